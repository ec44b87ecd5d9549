package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/roverlab/waypointx/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

func (api *plannerAPI) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func (api *plannerAPI) logError(r *http.Request, err error) {
	api.log.Error("http handler error",
		zap.Error(err),
		zap.String("request_method", r.Method),
		zap.String("request_url", r.URL.String()))
}

func (api *plannerAPI) errorResponseJSON(w http.ResponseWriter, r *http.Request, status int, message string) {
	var resp errorResponse
	resp.Error.Code = http.StatusText(status)
	resp.Error.Message = message

	js, err := json.Marshal(resp)
	if err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	js = append(js, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
}

func (api *plannerAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponseJSON(w, r, http.StatusBadRequest, err.Error())
}

func (api *plannerAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponseJSON(w, r, http.StatusNotFound, err.Error())
}

func (api *plannerAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponseJSON(w, r, http.StatusInternalServerError, util.MessageInternalServerError)
}

// getStatusCode maps a wrapped service error onto its http response.
func (api *plannerAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *util.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Code() {
		case util.ErrBadParamInput:
			api.errorResponseJSON(w, r, http.StatusBadRequest, err.Error())
			return
		case util.ErrNotFound:
			api.NotFoundResponse(w, r, err)
			return
		case util.ErrConflict:
			api.errorResponseJSON(w, r, http.StatusConflict, err.Error())
			return
		}
	}

	api.ServerErrorResponse(w, r, err)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}

	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
