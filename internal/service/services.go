package service

import (
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service/aggregate"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service/checkout"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service/entitlement"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service/progress"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/service/query"
)

type Collection struct {
	*progress.ProgressService
	*entitlement.EntitlementGate
	*aggregate.ProgressAggregator
	*checkout.CheckoutService
	*query.ModuleQueryService
}
