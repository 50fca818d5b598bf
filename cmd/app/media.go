package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/portfolio/internal/common"
	"github.com/sushihentaime/portfolio/internal/mediaservice"
)

func (app *application) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	file, err := app.readFile(w, r, "image", mediaservice.MaxFileSize)
	if err != nil {
		app.uploadErrorResponse(w, r, err)
		return
	}

	image, err := app.mediaService.UploadImage(r.Context(), &mediaservice.UploadRequest{
		FileName:    file.Name,
		ContentType: file.ContentType,
		Data:        file.Data,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"image": image}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// uploadErrorResponse reports errors from readFile.
func (app *application) uploadErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr common.ValidationError
	switch {
	case errors.As(err, &validationErr):
		app.failedValidationErrorResponse(w, r, validationErr.Errors)
	default:
		app.badRequestErrorResponse(w, r, err)
	}
}
