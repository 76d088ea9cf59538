package models

import (
	"time"

	"gorm.io/datatypes"
)

// Attorney is the application shape of an attorney profile.
// Every JSON key matches the wire column except imageUrl.
type Attorney struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	Specialty string     `json:"specialty"`
	Bio       string     `json:"bio"`
	Education []string   `json:"education"`
	ImageURL  string     `json:"imageUrl"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	LinkedIn  string     `json:"linkedin"`
	Featured  *bool      `json:"featured,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// AttorneyRow is a row of the attorneys table as stored by the backend
type AttorneyRow struct {
	ID        string                      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string                      `json:"name" db:"name" gorm:"type:text;not null"`
	Position  string                      `json:"position" db:"position" gorm:"type:text;not null"`
	Specialty string                      `json:"specialty" db:"specialty" gorm:"type:text;not null"`
	Bio       string                      `json:"bio" db:"bio" gorm:"type:text;not null"`
	Education datatypes.JSONSlice[string] `json:"education" db:"education" gorm:"type:jsonb;not null"`
	ImageURL  string                      `json:"image_url" db:"image_url" gorm:"column:image_url;type:text;not null"`
	Email     string                      `json:"email" db:"email" gorm:"type:text;not null"`
	Phone     string                      `json:"phone" db:"phone" gorm:"type:text;not null"`
	LinkedIn  string                      `json:"linkedin" db:"linkedin" gorm:"column:linkedin;type:text;not null"`
	Featured  *bool                       `json:"featured,omitempty" db:"featured" gorm:"type:boolean"`
	CreatedAt *time.Time                  `json:"created_at,omitempty" db:"created_at" gorm:"type:timestamp;not null"`
}

func (AttorneyRow) TableName() string {
	return "attorneys"
}

// WithIdentity returns a copy of the row carrying a server-assigned id and creation time
func (r AttorneyRow) WithIdentity(id string, createdAt time.Time) AttorneyRow {
	r.ID = id
	r.CreatedAt = &createdAt
	return r
}

// Validate reports the first required column left empty
func (r AttorneyRow) Validate() error {
	return requireFields(
		field{"name", r.Name},
		field{"position", r.Position},
		field{"specialty", r.Specialty},
		field{"email", r.Email},
	)
}

// AttorneyPatch is a partial attorney update. Nil fields are left unchanged.
type AttorneyPatch struct {
	Name      *string   `json:"name,omitempty"`
	Position  *string   `json:"position,omitempty"`
	Specialty *string   `json:"specialty,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Education *[]string `json:"education,omitempty"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	LinkedIn  *string   `json:"linkedin,omitempty"`
	Featured  *bool     `json:"featured,omitempty"`
}

// Validate rejects patches that would blank out a required field
func (p AttorneyPatch) Validate() error {
	return rejectBlank(
		optField{"name", p.Name},
		optField{"position", p.Position},
		optField{"specialty", p.Specialty},
		optField{"email", p.Email},
	)
}

// Apply merges the patch into a, leaving id and created_at untouched
func (p AttorneyPatch) Apply(a Attorney) Attorney {
	setString(&a.Name, p.Name)
	setString(&a.Position, p.Position)
	setString(&a.Specialty, p.Specialty)
	setString(&a.Bio, p.Bio)
	if p.Education != nil {
		a.Education = append([]string(nil), (*p.Education)...)
	}
	setString(&a.ImageURL, p.ImageURL)
	setString(&a.Email, p.Email)
	setString(&a.Phone, p.Phone)
	setString(&a.LinkedIn, p.LinkedIn)
	if p.Featured != nil {
		featured := *p.Featured
		a.Featured = &featured
	}
	return a
}

// Columns returns the partial wire record for the patch, keyed by column name
func (p AttorneyPatch) Columns() map[string]any {
	cols := make(map[string]any)
	putString(cols, "name", p.Name)
	putString(cols, "position", p.Position)
	putString(cols, "specialty", p.Specialty)
	putString(cols, "bio", p.Bio)
	if p.Education != nil {
		cols["education"] = datatypes.JSONSlice[string](*p.Education)
	}
	putString(cols, "image_url", p.ImageURL)
	putString(cols, "email", p.Email)
	putString(cols, "phone", p.Phone)
	putString(cols, "linkedin", p.LinkedIn)
	if p.Featured != nil {
		cols["featured"] = *p.Featured
	}
	return cols
}

// AttorneyToRow converts an attorney to its wire shape
func AttorneyToRow(a Attorney) AttorneyRow {
	return AttorneyRow{
		ID:        a.ID,
		Name:      a.Name,
		Position:  a.Position,
		Specialty: a.Specialty,
		Bio:       a.Bio,
		Education: datatypes.JSONSlice[string](a.Education),
		ImageURL:  a.ImageURL,
		Email:     a.Email,
		Phone:     a.Phone,
		LinkedIn:  a.LinkedIn,
		Featured:  a.Featured,
		CreatedAt: a.CreatedAt,
	}
}

// AttorneyFromRow converts a stored row to the application shape
func AttorneyFromRow(r AttorneyRow) Attorney {
	return Attorney{
		ID:        r.ID,
		Name:      r.Name,
		Position:  r.Position,
		Specialty: r.Specialty,
		Bio:       r.Bio,
		Education: []string(r.Education),
		ImageURL:  r.ImageURL,
		Email:     r.Email,
		Phone:     r.Phone,
		LinkedIn:  r.LinkedIn,
		Featured:  r.Featured,
		CreatedAt: r.CreatedAt,
	}
}
