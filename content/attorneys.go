package content

import (
	"time"

	"github.com/rpupo63/sleeklegal-backend/models"
)

type Attorneys = Provider[models.Attorney, models.AttorneyPatch]

// AttorneyCollection describes attorney profiles. New profiles go to the
// end of the list.
func AttorneyCollection() Collection[models.Attorney, models.AttorneyPatch] {
	return Collection[models.Attorney, models.AttorneyPatch]{
		Name:   "attorneys",
		Entity: "attorney",
		Label:  "Attorney",
		Seed:   models.SeedAttorneys,
		ID:     func(a models.Attorney) string { return a.ID },
		Stamp: func(a models.Attorney, id string, at time.Time) models.Attorney {
			a.ID = id
			a.CreatedAt = &at
			return a
		},
		Strip: func(a models.Attorney) models.Attorney {
			a.ID = ""
			a.CreatedAt = nil
			return a
		},
		Validate:      func(a models.Attorney) error { return models.AttorneyToRow(a).Validate() },
		ValidatePatch: models.AttorneyPatch.Validate,
		Apply: func(a models.Attorney, p models.AttorneyPatch) models.Attorney {
			return p.Apply(a)
		},
		Placement: Append,
	}
}

// AttorneyWire maps attorneys to rows of the attorneys table, listed by name
func AttorneyWire() Wire[models.Attorney, models.AttorneyPatch, models.AttorneyRow] {
	return Wire[models.Attorney, models.AttorneyPatch, models.AttorneyRow]{
		ToRow:   models.AttorneyToRow,
		FromRow: models.AttorneyFromRow,
		Columns: models.AttorneyPatch.Columns,
		OrderBy: "name",
	}
}

func NewAttorneys(gateway Gateway[models.AttorneyRow], opts ...Option) *Attorneys {
	return NewProvider(AttorneyCollection(), gateway, AttorneyWire(), opts...)
}
