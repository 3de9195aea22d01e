package google

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/forms/v1"
)

// ErrQuestionNotFound is returned when a form does not carry the named
// choice question.  Callers treat this as a hard failure for the
// operation; nothing is partially applied.
var ErrQuestionNotFound = errors.New("question not found on form")

// Seating times offered on every registration form.  The café runs
// three fixed seatings per night.
var seatingTimes = []string{"17:30", "19:00", "20:30"}

// CreateEventForm creates a registration form for an event: a required
// name question and a required seating-time dropdown.  It returns the
// new form's ID and its public responder URL.
func (c *Client) CreateEventForm(ctx context.Context, title string) (formID, formURL string, err error) {
	created, err := c.Forms.Forms.Create(&forms.Form{
		Info: &forms.Info{Title: title, DocumentTitle: title},
	}).Context(ctx).Do()
	if err != nil {
		return "", "", fmt.Errorf("create form: %w", err)
	}
	if created.FormId == "" {
		return "", "", errors.New("create form: empty form ID in response")
	}

	options := make([]*forms.Option, 0, len(seatingTimes))
	for _, t := range seatingTimes {
		options = append(options, &forms.Option{Value: t})
	}
	_, err = c.Forms.Forms.BatchUpdate(created.FormId, &forms.BatchUpdateFormRequest{
		Requests: []*forms.Request{
			{
				CreateItem: &forms.CreateItemRequest{
					Item: &forms.Item{
						Title: "お名前",
						QuestionItem: &forms.QuestionItem{
							Question: &forms.Question{
								Required:     true,
								TextQuestion: &forms.TextQuestion{},
							},
						},
					},
					Location: &forms.Location{Index: 0, ForceSendFields: []string{"Index"}},
				},
			},
			{
				CreateItem: &forms.CreateItemRequest{
					Item: &forms.Item{
						Title: "ご来店時間",
						QuestionItem: &forms.QuestionItem{
							Question: &forms.Question{
								Required: true,
								ChoiceQuestion: &forms.ChoiceQuestion{
									Type:    "DROP_DOWN",
									Options: options,
								},
							},
						},
					},
					Location: &forms.Location{Index: 1},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", "", fmt.Errorf("add questions to form %s: %w", created.FormId, err)
	}

	url := created.ResponderUri
	if url == "" {
		url = fmt.Sprintf("https://docs.google.com/forms/d/%s/viewform", created.FormId)
	}
	return created.FormId, url, nil
}

// ReplaceChoiceOptions replaces the full option list of the named
// dropdown question on a form.  The question is located by exact title;
// ErrQuestionNotFound is returned when no such question exists.  The
// form description is refreshed with the update time in the same batch
// so operators can see when the options were last synced.
func (c *Client) ReplaceChoiceOptions(ctx context.Context, formID, questionTitle string, choices []string) error {
	form, err := c.Forms.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get form %s: %w", formID, err)
	}

	itemIndex := -1
	var item *forms.Item
	for i, it := range form.Items {
		if it.Title == questionTitle && it.QuestionItem != nil {
			itemIndex = i
			item = it
			break
		}
	}
	if item == nil {
		return fmt.Errorf("form %s, question %q: %w", formID, questionTitle, ErrQuestionNotFound)
	}

	options := make([]*forms.Option, 0, len(choices))
	for _, choice := range choices {
		options = append(options, &forms.Option{Value: choice})
	}

	_, err = c.Forms.Forms.BatchUpdate(formID, &forms.BatchUpdateFormRequest{
		Requests: []*forms.Request{
			{
				UpdateFormInfo: &forms.UpdateFormInfoRequest{
					Info: &forms.Info{
						Description: fmt.Sprintf("Last updated: %s", time.Now().Format("2006-01-02 15:04")),
					},
					UpdateMask: "description",
				},
			},
			{
				UpdateItem: &forms.UpdateItemRequest{
					Item: &forms.Item{
						ItemId: item.ItemId,
						Title:  item.Title,
						QuestionItem: &forms.QuestionItem{
							Question: &forms.Question{
								Required: true,
								ChoiceQuestion: &forms.ChoiceQuestion{
									Type:    "DROP_DOWN",
									Options: options,
								},
							},
						},
					},
					Location:   &forms.Location{Index: int64(itemIndex), ForceSendFields: []string{"Index"}},
					UpdateMask: "questionItem",
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update form %s choices: %w", formID, err)
	}
	return nil
}
