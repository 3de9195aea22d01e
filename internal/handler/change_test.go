package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hkr-miura/moonloop-admin/internal/model"
	"github.com/hkr-miura/moonloop-admin/internal/service"
)

// fakeChangeStore backs both the handler's lister and the reconciler's
// request store.
type fakeChangeStore struct {
	rows []model.ChangeRequest
}

func (f *fakeChangeStore) List(context.Context) ([]model.ChangeRequest, error) {
	out := make([]model.ChangeRequest, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeChangeStore) Get(_ context.Context, row int) (model.ChangeRequest, error) {
	for _, r := range f.rows {
		if r.RowPosition == row {
			return r, nil
		}
	}
	return model.ChangeRequest{}, errors.New("row not found")
}

func (f *fakeChangeStore) SetStatus(_ context.Context, row int, status string) error {
	for i := range f.rows {
		if f.rows[i].RowPosition == row {
			f.rows[i].Status = status
			return nil
		}
	}
	return errors.New("row not found")
}

// fakeReservations backs both the handler's store and the reconciler's
// changer.
type fakeReservations struct {
	rows []model.Reservation
}

func (f *fakeReservations) List(context.Context) ([]model.Reservation, error) {
	out := make([]model.Reservation, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeReservations) UpdateStatus(_ context.Context, row int, status string) error {
	for i := range f.rows {
		if f.rows[i].RowPosition == row {
			f.rows[i].Status = status
			return nil
		}
	}
	return errors.New("row not found")
}

func (f *fakeReservations) ApplyChange(_ context.Context, row int, date, timeStr string, partySize int) error {
	for i := range f.rows {
		if f.rows[i].RowPosition == row {
			f.rows[i].Date = date
			f.rows[i].Time = timeStr
			f.rows[i].PartySize = partySize
			return nil
		}
	}
	return errors.New("row not found")
}

func newChangeFixture() (*fakeChangeStore, *fakeReservations, *ChangeHandler) {
	requests := &fakeChangeStore{rows: []model.ChangeRequest{
		{RowPosition: 2, GuestName: "Taro", OriginalDate: "2026-02-09", NewDate: "2026-03-01", NewTime: "19:00", NewCount: 4, Status: model.ChangePending},
		{RowPosition: 3, GuestName: "Nobody", OriginalDate: "1999-01-01", Status: model.ChangePending},
		{RowPosition: 4, GuestName: "Hanako", OriginalDate: "2026-02-16", Status: model.ChangeApproved},
	}}
	reservations := &fakeReservations{rows: []model.Reservation{
		{RowPosition: 5, GuestName: "Taro", Date: "2026-02-09", Time: "17:30", PartySize: 2, Status: model.ReservationActive},
	}}
	h := NewChangeHandler(requests, reservations, service.LooseMatcher{}, service.NewReconciler(requests, reservations), nil)
	return requests, reservations, h
}

func TestChangeListPairsRequestsWithMatches(t *testing.T) {
	_, _, h := newChangeFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/changes", nil)
	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("List returned %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Count int `json:"count"`
		Items []struct {
			Request    model.ChangeRequest `json:"request"`
			Match      *model.Reservation  `json:"match"`
			CanApprove bool                `json:"can_approve"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Count != 2 {
		t.Fatalf("count = %d, want 2 (resolved request hidden)", body.Count)
	}
	if body.Items[0].Match == nil || !body.Items[0].CanApprove {
		t.Error("matched request is missing its match / approve flag")
	}
	if body.Items[0].Match.RowPosition != 5 {
		t.Errorf("match row = %d, want 5", body.Items[0].Match.RowPosition)
	}
	if body.Items[1].Match != nil || body.Items[1].CanApprove {
		t.Error("unmatched request carries a match / approve flag")
	}
}

func postJSON(h echo.HandlerFunc, target, row, payload string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(target)
	c.SetParamNames("row")
	c.SetParamValues(row)
	_ = h(c)
	return rec
}

func TestChangeApproveHappyPath(t *testing.T) {
	requests, reservations, h := newChangeFixture()

	rec := postJSON(h.Approve, "/v1/changes/:row/approve", "2", `{"reservation_row":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if requests.rows[0].Status != model.ChangeApproved {
		t.Errorf("request status = %s, want Approved", requests.rows[0].Status)
	}
	got := reservations.rows[0]
	if got.Date != "2026-03-01" || got.Time != "19:00" || got.PartySize != 4 {
		t.Errorf("reservation not updated: %+v", got)
	}
}

func TestChangeApproveWithoutMatchIsRefused(t *testing.T) {
	requests, _, h := newChangeFixture()

	rec := postJSON(h.Approve, "/v1/changes/:row/approve", "3", `{"reservation_row":0}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
	if requests.rows[1].Status != model.ChangePending {
		t.Errorf("request status = %s, want Pending", requests.rows[1].Status)
	}
}

func TestChangeApproveResolvedConflicts(t *testing.T) {
	_, _, h := newChangeFixture()

	rec := postJSON(h.Approve, "/v1/changes/:row/approve", "4", `{"reservation_row":5}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
}

func TestChangeRejectLeavesReservation(t *testing.T) {
	requests, reservations, h := newChangeFixture()

	rec := postJSON(h.Reject, "/v1/changes/:row/reject", "2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if requests.rows[0].Status != model.ChangeRejected {
		t.Errorf("request status = %s, want Rejected", requests.rows[0].Status)
	}
	got := reservations.rows[0]
	if got.Date != "2026-02-09" || got.PartySize != 2 {
		t.Errorf("reservation changed on rejection: %+v", got)
	}
}

func TestChangeBadRowParam(t *testing.T) {
	_, _, h := newChangeFixture()
	rec := postJSON(h.Approve, "/v1/changes/:row/approve", "first", `{"reservation_row":5}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
