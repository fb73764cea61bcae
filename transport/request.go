package transport

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/lead-crm/constant"
	"github.com/muhammadheryan/lead-crm/model"
	utilsContext "github.com/muhammadheryan/lead-crm/utils/context"
	"github.com/muhammadheryan/lead-crm/utils/errors"
	validatorx "github.com/muhammadheryan/lead-crm/utils/validator"
)

// in-memory part of a multipart form; larger parts spill to temp files
const multipartMemory = 8 << 20

const (
	defaultMaxFileBytes = 2 << 20
	maxFilesPerRequest  = 10
	// room for form fields and part headers
	multipartOverhead   = 1 << 20
)

// decode reads a JSON body into req and validates it.
func decode(r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return validationFailed("request", "The request body is not valid JSON.")
	}
	return validate(req)
}

func validate(req any) error {
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetValidationError(validatorx.FieldErrors(err))
	}
	return nil
}

func callerIdentity(r *http.Request) (model.Identity, error) {
	id, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		return model.Identity{}, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return id, nil
}

// targetOf resolves the caller and the {id} path variable of the request.
func targetOf(r *http.Request) (model.Identity, uint64, error) {
	identity, err := callerIdentity(r)
	if err != nil {
		return model.Identity{}, 0, err
	}
	id, err := pathID(r, "id")
	if err != nil {
		return model.Identity{}, 0, err
	}
	return identity, id, nil
}

func pathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, validationFailed(name, "The "+name+" must be a positive integer.")
	}
	return id, nil
}

func (s *RestHandler) fileLimit() int64 {
	if s.MaxFileBytes > 0 {
		return s.MaxFileBytes
	}
	return defaultMaxFileBytes
}

// parseMultipart caps the request body before parsing it, so no request can
// carry more than maxFilesPerRequest files at the size limit.
func (s *RestHandler) parseMultipart(w http.ResponseWriter, r *http.Request, field string) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFilesPerRequest*s.fileLimit()+multipartOverhead)
	err := r.ParseMultipartForm(multipartMemory)
	if err == nil {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.SetFieldError(constant.ErrInvalidFile, field, "The request is too large.")
	}
	return validationFailed(field, "The request must be a multipart form.")
}

// formFile returns the named multipart file, or nil when it was not sent.
func (s *RestHandler) formFile(r *http.Request, field string) (*model.FileUpload, error) {
	f, header, err := r.FormFile(field)
	if stderrors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.SetFieldError(constant.ErrInvalidFile, field, "The "+field+" failed to upload.")
	}
	defer f.Close()
	return readUpload(f, header, field, s.fileLimit())
}

// formFiles returns every file sent under field, accepting the "field[]" form too.
func (s *RestHandler) formFiles(r *http.Request, field string) ([]model.FileUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var headers []*multipart.FileHeader
	headers = append(headers, r.MultipartForm.File[field]...)
	headers = append(headers, r.MultipartForm.File[field+"[]"]...)

	files := make([]model.FileUpload, 0, len(headers))
	for i, header := range headers {
		name := fmt.Sprintf("%s.%d", field, i)
		f, err := header.Open()
		if err != nil {
			return nil, errors.SetFieldError(constant.ErrInvalidFile, name, "The "+name+" failed to upload.")
		}
		upload, err := readUpload(f, header, name, s.fileLimit())
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, *upload)
	}
	return files, nil
}

// readUpload rejects parts over limit before buffering them.
func readUpload(f multipart.File, header *multipart.FileHeader, field string, limit int64) (*model.FileUpload, error) {
	tooLarge := errors.SetFieldError(constant.ErrInvalidFile, field,
		fmt.Sprintf("The %s may not be greater than %d kilobytes.", field, limit/1024))
	if header.Size > limit {
		return nil, tooLarge
	}

	content, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.SetFieldError(constant.ErrInvalidFile, field, "The "+field+" failed to upload.")
	}
	if int64(len(content)) > limit {
		return nil, tooLarge
	}
	return &model.FileUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  content,
	}, nil
}

func validationFailed(field, message string) error {
	return errors.SetFieldError(constant.ErrInvalidRequest, field, message)
}
