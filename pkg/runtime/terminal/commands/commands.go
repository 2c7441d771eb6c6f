package commands

import (
	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/runtime/app"
	"github.com/de-tools/roi-atlas/pkg/runtime/terminal/export"
)

// Deps gives commands access to the opened app. App is resolved lazily because the
// config path is only known after flags are parsed.
type Deps struct {
	App      func() *app.App
	Exporter *export.Reporter
	Lister   Lister
}

type Lister interface {
	HandleSaved(current domain.Report, saved []domain.Report) error
	HandleOperations(report domain.Report) error
}
