package main

import (
	"net/http"

	"github.com/sushihentaime/portfolio/internal/contactservice"
)

func (app *application) contactHandler(w http.ResponseWriter, r *http.Request) {
	var input contactservice.ContactRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.contactService.Submit(r.Context(), &input)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusAccepted, envelope{"message": "your message has been received"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
