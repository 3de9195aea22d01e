package service

import (
	"testing"

	"github.com/hkr-miura/moonloop-admin/internal/model"
)

// The fixture from the review flow: the customer wrote "Taro" and
// claims their booking is on 2026-02-09.  Neither stored reservation
// carries both signals, so only the loose strategy finds anything.
func looseFixture() (model.ChangeRequest, []model.Reservation) {
	req := model.ChangeRequest{
		GuestName:    "Taro",
		OriginalDate: "2026-02-09",
		NewDate:      "2026-03-01",
	}
	reservations := []model.Reservation{
		{RowPosition: 2, GuestName: "Taro", Date: "2026-03-01"},
		{RowPosition: 3, GuestName: "Hanako", Date: "2026-02-09"},
	}
	return req, reservations
}

func TestLooseMatcherEitherSignalQualifies(t *testing.T) {
	req, reservations := looseFixture()

	got, ok := LooseMatcher{}.Match(req, reservations)
	if !ok {
		t.Fatal("loose match found nothing; name OR date should qualify")
	}
	// Both reservations qualify (one by name, one by date); the first
	// in store order wins.
	if got.RowPosition != 2 {
		t.Errorf("matched row %d, want row 2 (first qualifying in store order)", got.RowPosition)
	}
}

func TestLooseMatcherStoreOrderBreaksTies(t *testing.T) {
	req, reservations := looseFixture()
	// Reverse store order: now the date-equality match comes first.
	reservations[0], reservations[1] = reservations[1], reservations[0]

	got, ok := LooseMatcher{}.Match(req, reservations)
	if !ok {
		t.Fatal("loose match found nothing")
	}
	if got.GuestName != "Hanako" {
		t.Errorf("matched %q, want Hanako (first qualifying in store order)", got.GuestName)
	}
}

func TestLooseMatcherNoMatch(t *testing.T) {
	req := model.ChangeRequest{GuestName: "Taro", OriginalDate: "2026-02-09"}
	reservations := []model.Reservation{
		{RowPosition: 2, GuestName: "Hanako", Date: "2026-04-01"},
	}
	if _, ok := (LooseMatcher{}).Match(req, reservations); ok {
		t.Error("loose match succeeded with neither name nor date equal")
	}
}

func TestStrictMatcherRequiresBothSignals(t *testing.T) {
	req, reservations := looseFixture()
	if _, ok := (StrictMatcher{}).Match(req, reservations); ok {
		t.Error("strict match succeeded although no reservation has both name and date")
	}

	reservations = append(reservations, model.Reservation{
		RowPosition: 4, GuestName: "Taro", Date: "2026-02-09",
	})
	got, ok := StrictMatcher{}.Match(req, reservations)
	if !ok {
		t.Fatal("strict match found nothing despite an exact candidate")
	}
	if got.RowPosition != 4 {
		t.Errorf("matched row %d, want row 4", got.RowPosition)
	}
}

func TestMatcherFor(t *testing.T) {
	if _, ok := MatcherFor("strict").(StrictMatcher); !ok {
		t.Error(`MatcherFor("strict") did not return a StrictMatcher`)
	}
	if _, ok := MatcherFor("loose").(LooseMatcher); !ok {
		t.Error(`MatcherFor("loose") did not return a LooseMatcher`)
	}
	if _, ok := MatcherFor("").(LooseMatcher); !ok {
		t.Error("MatcherFor default is not the loose strategy")
	}
}
