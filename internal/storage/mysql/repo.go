package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"backoffice_console/internal/domain"
)

// Repo implements domain.ResourceRepository. Each row stores the variant
// payload as JSON under its discriminant; the industry column scopes a
// tenant's axis so a hotel row can never surface in a cafe listing.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// variantJSON extracts the payload for the resource's declared type.
func variantJSON(r domain.Resource) ([]byte, error) {
	var v any
	switch r.Type {
	case domain.ResourceExpert:
		v = r.Expert
	case domain.ResourceRoom:
		v = r.Room
	case domain.ResourceTable:
		v = r.Table
	case domain.ResourceTour:
		v = r.Tour
	default:
		return nil, fmt.Errorf("unknown resource type %q", r.Type)
	}
	if v == nil {
		return nil, fmt.Errorf("missing %s payload", r.Type)
	}
	return json.Marshal(v)
}

func scanResource(id string, typ string, attrs []byte) (domain.Resource, error) {
	r := domain.Resource{ID: id, Type: domain.ResourceType(typ)}
	var err error
	switch r.Type {
	case domain.ResourceExpert:
		r.Expert = &domain.Expert{}
		err = json.Unmarshal(attrs, r.Expert)
	case domain.ResourceRoom:
		r.Room = &domain.Room{}
		err = json.Unmarshal(attrs, r.Room)
	case domain.ResourceTable:
		r.Table = &domain.Table{}
		err = json.Unmarshal(attrs, r.Table)
	case domain.ResourceTour:
		r.Tour = &domain.Tour{}
		err = json.Unmarshal(attrs, r.Tour)
	default:
		err = fmt.Errorf("row %s has unknown type %q", id, typ)
	}
	return r, err
}

func (r *Repo) ListResources(ctx context.Context, industry domain.IndustryType) ([]domain.Resource, error) {
	rows, err := r.db.QueryContext(ctx, listResourcesSQL, string(industry))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Resource
	for rows.Next() {
		var (
			id, typ string
			attrs   []byte
		)
		if err := rows.Scan(&id, &typ, &attrs); err != nil {
			return nil, err
		}
		res, err := scanResource(id, typ, attrs)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *Repo) CreateResource(ctx context.Context, industry domain.IndustryType, res domain.Resource) (domain.Resource, error) {
	attrs, err := variantJSON(res)
	if err != nil {
		return domain.Resource{}, err
	}
	res.ID = uuid.NewString()
	if _, err := r.db.ExecContext(ctx, insertResourceSQL, res.ID, string(industry), string(res.Type), attrs); err != nil {
		return domain.Resource{}, err
	}
	return res, nil
}

func (r *Repo) UpdateResource(ctx context.Context, industry domain.IndustryType, res domain.Resource) (domain.Resource, error) {
	attrs, err := variantJSON(res)
	if err != nil {
		return domain.Resource{}, err
	}
	result, err := r.db.ExecContext(ctx, updateResourceSQL, attrs, res.ID, string(industry), string(res.Type))
	if err != nil {
		return domain.Resource{}, err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.Resource{}, domain.ErrNotFound
	}
	return res, nil
}

func (r *Repo) DeleteResource(ctx context.Context, industry domain.IndustryType, id string) error {
	result, err := r.db.ExecContext(ctx, deleteResourceSQL, id, string(industry))
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
