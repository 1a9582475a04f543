package admin

import (
	"context"

	"github.com/germanygsg/medrec/internal/audit"
)

type Repository interface {
	// WipeAll removes every clinical row in one transaction.
	WipeAll(ctx context.Context) error
}

type WipeData struct {
	repo  Repository
	audit audit.Sink
}

func NewWipeData(repo Repository, auditSink audit.Sink) *WipeData {
	return &WipeData{repo: repo, audit: auditSink}
}

func (uc *WipeData) Execute(ctx context.Context, actorID *string) error {
	if err := uc.repo.WipeAll(ctx); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: actorID,
		Action: "data_wiped",
		Entity: "all",
	})

	return nil
}
