package postgres

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

func TestUpdateSetQuery(t *testing.T) {
	var set updateSet
	if !set.empty() {
		t.Fatal("new set must be empty")
	}
	set.add("titulo", "Novo")
	set.add("principal", true)

	q, args := set.query(tableGalleries, "g1", "id")
	want := "UPDATE galerias SET titulo = $1, principal = $2 WHERE id = $3 RETURNING id"
	if q != want {
		t.Fatalf("query = %q, want %q", q, want)
	}
	if len(args) != 3 || args[2] != "g1" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestLeadWhere(t *testing.T) {
	if where, args := leadWhere(domain.LeadFilter{}); where != "" || args != nil {
		t.Fatalf("empty filter produced %q %v", where, args)
	}

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	where, args := leadWhere(domain.LeadFilter{
		Status: domain.LeadProposta,
		Search: " 50%_off ",
		From:   from,
	})
	if !strings.Contains(where, "status = $1") ||
		!strings.Contains(where, "(nome ILIKE $2 OR email ILIKE $2 OR empresa ILIKE $2)") ||
		!strings.Contains(where, "created_at >= $3") {
		t.Fatalf("unexpected where %q", where)
	}
	if len(args) != 3 || args[1] != `%50\%\_off%` {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestLeadListQuery(t *testing.T) {
	q, args := leadListQuery(domain.LeadFilter{Status: domain.LeadProposta})
	if !strings.HasSuffix(q, " WHERE status = $1 ORDER BY ordem ASC, created_at DESC") {
		t.Fatalf("unexpected query %q", q)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args %v", args)
	}

	q, _ = leadListQuery(domain.LeadFilter{})
	if !strings.HasSuffix(q, "FROM leads ORDER BY ordem ASC, created_at DESC") {
		t.Fatalf("unexpected unfiltered query %q", q)
	}
}

func TestNextOrder(t *testing.T) {
	if got := nextOrder(tableTeam); got != "(SELECT COALESCE(MAX(ordem), -1) + 1 FROM equipe)" {
		t.Fatalf("unexpected sub-select %q", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Fatal("23505 must be a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) || isUniqueViolation(errors.New("x")) {
		t.Fatal("other errors are not unique violations")
	}
}
