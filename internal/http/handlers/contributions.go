package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"causes/internal/domain"
)

// amountField accepts "25" as well as 25 and keeps the raw text so the digit
// check sees exactly what the client sent.
type amountField string

func (f *amountField) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = amountField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = amountField(n.String())
	return nil
}

type contributionRequest struct {
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Amount amountField `json:"amount"`
}

func (a *App) CausesContribute(w http.ResponseWriter, r *http.Request) {
	causeID, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req contributionRequest
	if !a.decode(w, r, &req) {
		return
	}
	name, email, amount, err := domain.ParseContributionInput(domain.ContributionInput{
		Name:   req.Name,
		Email:  req.Email,
		Amount: string(req.Amount),
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}

	cause, err := a.Causes.GetByID(r.Context(), causeID)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	contribution := &domain.Contribution{
		CauseID:        causeID,
		CauseDonatedTo: cause.Title,
		Name:           name,
		Email:          email,
		Amount:         amount,
	}
	res, err := a.Contributions.Create(r.Context(), contribution)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.Logger.Info().
		Str("cause_id", causeID).
		Str("contribution_id", res.InsertedID).
		Int64("amount", amount).
		Msg("contribution recorded")
	a.json(w, http.StatusOK, res)
}

func (a *App) CausesContributions(w http.ResponseWriter, r *http.Request) {
	causeID, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if _, err := a.Causes.GetByID(r.Context(), causeID); err != nil {
		a.fail(w, r, err)
		return
	}
	items, err := a.Contributions.ListByCause(r.Context(), causeID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}
