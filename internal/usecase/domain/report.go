package domain

import (
	"context"

	"teamboard/internal/entities"
	"teamboard/internal/report"
)

// GenerateReport assembles and renders a report over live data.
func (u *Usecase) GenerateReport(ctx context.Context, actor entities.User, req entities.ReportRequest) (doc entities.Document, err error) {
	defer func() { u.record("report.generate", err) }()

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	tasks, members, err := u.analyticsData(ctx, actor)
	if err != nil {
		return entities.Document{}, err
	}
	renderer, err := u.renderers.For(req.Format)
	if err != nil {
		return entities.Document{}, err
	}
	payload, err := u.assembler.Assemble(req, report.Dataset{Tasks: tasks, Members: members, Now: u.now()})
	if err != nil {
		return entities.Document{}, err
	}
	doc, err = renderer.Render(payload)
	if err != nil {
		u.log.Errorw("failed to render report", "error", err, "type", req.Type, "format", req.Format)
		return entities.Document{}, err
	}

	u.metrics.RecordReport(string(req.Type), string(req.Format))
	u.log.Infow("report generated", "type", req.Type, "format", req.Format, "actor_id", actor.ID, "bytes", len(doc.Body))
	return doc, nil
}
