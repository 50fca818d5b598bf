package main

import (
	"net/http"

	"github.com/sushihentaime/portfolio/internal/resumeservice"
)

func (app *application) getCurrentResumeHandler(w http.ResponseWriter, r *http.Request) {
	resume, err := app.resumeService.GetCurrent(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"resume": resume}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getResumesHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := app.readLimitOffsetParams(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	resumes, err := app.resumeService.GetResumes(r.Context(), limit, offset)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"resumes": resumes}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) uploadResumeHandler(w http.ResponseWriter, r *http.Request) {
	file, err := app.readFile(w, r, "resume", resumeservice.MaxFileSize)
	if err != nil {
		app.uploadErrorResponse(w, r, err)
		return
	}

	resume, err := app.resumeService.Upload(r.Context(), &resumeservice.UploadRequest{
		FileName:    file.Name,
		ContentType: file.ContentType,
		Data:        file.Data,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"resume": resume}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
