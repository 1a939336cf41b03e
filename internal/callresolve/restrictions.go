package callresolve

import (
	"github.com/callcheck/callcheck/internal/diagnostic"
	"github.com/callcheck/callcheck/internal/types"
)

// enforceRestrictions checks each call-site type-argument restriction
// recorded by seedCallSiteTypeArguments against what argument synthesis
// actually inferred for that parameter, after inference completes so a
// failing restriction reports the inferred type rather than a
// placeholder.
func enforceRestrictions(ctx *CallContext, sc *SeedingContext) []diagnostic.Error {
	var errs []diagnostic.Error
	for param, restriction := range sc.TypeRestrictions {
		inferred, ok := sc.TypeArguments[param]
		if !ok {
			continue
		}
		scratch := NewSeedingContext()
		if !isSubtype(ctx.Store, scratch, restriction, inferred) {
			errs = append(errs, diagnostic.NewRestrictionInvalidArgumentTypeError("", restriction, inferred, diagnostic.DefaultSpan))
		}
	}
	return errs
}
