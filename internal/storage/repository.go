package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/unicornpulse/internal/domain/models"
)

// companyColumns is the header handed to the ingestion builder; it matches the
// column names of the unicorn CSV so both sources normalize identically.
var companyColumns = []string{
	models.ColCompany,
	models.ColValuation,
	models.ColDateJoined,
	models.ColCountry,
	models.ColCity,
	models.ColIndustry,
	models.ColInvestors,
}

// selectCompanies reads every value as text; normalization happens in ingestion.
const selectCompanies = `
	SELECT
		company,
		valuation::text,
		to_char(date_joined, 'YYYY-MM-DD'),
		country,
		COALESCE(city, ''),
		industry,
		COALESCE(select_investors, '')
	FROM unicorns
	ORDER BY id`

// CompanyRepository defines the read-only contract of a database-backed dataset source.
type CompanyRepository interface {
	FetchRows(ctx context.Context) (header []string, rows [][]string, err error)
}

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// FetchRows returns every unicorn row in insertion order as raw strings.
func (r *companyRepository) FetchRows(ctx context.Context) ([]string, [][]string, error) {
	rows, err := r.db.QueryContext(ctx, selectCompanies)
	if err != nil {
		return nil, nil, fmt.Errorf("query unicorns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out [][]string
	for rows.Next() {
		rec := make([]string, len(companyColumns))
		dest := make([]any, len(rec))
		for i := range rec {
			dest[i] = &rec[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("scan unicorn row %d: %w", len(out)+1, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate unicorns: %w", err)
	}

	return append([]string(nil), companyColumns...), out, nil
}
