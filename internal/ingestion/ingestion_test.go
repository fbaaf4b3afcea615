package ingestion

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type fakeRepo struct {
	header []string
	rows   [][]string
	err    error
}

func (f *fakeRepo) FetchRows(context.Context) ([]string, [][]string, error) {
	return f.header, f.rows, f.err
}

var repoHeader = []string{"Company", "Valuation ($B)", "Date Joined", "Country", "City", "Industry", "Select Investors"}

func TestLoadRepository_TableDriven(t *testing.T) {
	cases := []struct {
		name     string
		repo     *fakeRepo
		wantRows int
		wantErr  bool
	}{
		{
			name: "ok",
			repo: &fakeRepo{header: repoHeader, rows: [][]string{
				{"A", "1.50", "2020-01-01", "US", "", "AI", ""},
				{"B", "2.00", "2020-01-02", "UK", "London", "Fintech", ""},
			}},
			wantRows: 2,
		},
		{name: "fetch error", repo: &fakeRepo{err: errors.New("db down")}, wantErr: true},
		{name: "bad header", repo: &fakeRepo{header: []string{"Company"}}, wantErr: true},
		{
			name:    "bad valuation",
			repo:    &fakeRepo{header: repoHeader, rows: [][]string{{"A", "n/a", "2020-01-01", "US", "", "AI", ""}}},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := LoadRepository(context.Background(), tc.repo)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if ds.Len() != tc.wantRows {
				t.Fatalf("rows: want %d got %d", tc.wantRows, ds.Len())
			}
		})
	}
}

func TestLoadRepository_MatchesCSV(t *testing.T) {
	rows := [][]string{
		{"A", "1.50", "2020-01-01", "US", "", "AI", ""},
		{"B", "2.00", "2020-01-02", "UK", "London", "Fintech", "Index Ventures"},
	}
	fromRepo, err := LoadRepository(context.Background(), &fakeRepo{header: repoHeader, rows: rows})
	if err != nil {
		t.Fatalf("repo: %v", err)
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(repoHeader, ",") + "\n")
	for _, r := range rows {
		sb.WriteString(strings.Join(r, ",") + "\n")
	}
	fromCSV, err := Parse(context.Background(), strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("csv: %v", err)
	}

	if !reflect.DeepEqual(fromRepo.Companies(), fromCSV.Companies()) {
		t.Fatalf("sources disagree:\nrepo=%+v\ncsv=%+v", fromRepo.Companies(), fromCSV.Companies())
	}
}
