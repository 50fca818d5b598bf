package main

import (
	"net/http"

	"github.com/sushihentaime/portfolio/internal/profileservice"
)

func (app *application) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := app.profileService.GetProfile(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"profile": profile}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) saveProfileHandler(w http.ResponseWriter, r *http.Request) {
	var input profileservice.ProfileRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	profile, created, err := app.profileService.SaveProfile(r.Context(), &input)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	err = app.writeJSON(w, status, envelope{"profile": profile}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
