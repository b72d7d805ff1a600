package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"MedivaDesk/models"
)

// Client talks to the record-storage API. Every call is fire-once: no
// retry, no timeout policy beyond the injected http.Client's. The session
// store is read on each request so a login or logout between calls takes
// effect immediately.
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Sessions *SessionStore
}

// NewClient builds a storage API client rooted at baseURL.
func NewClient(baseURL string, sessions *SessionStore) *Client {
	return &Client{
		BaseURL:  baseURL,
		HTTP:     http.DefaultClient,
		Sessions: sessions,
	}
}

// APIError is a rejection decoded from the storage API. Message is what the
// upstream put in its "error" or "message" field, possibly empty.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("storage api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("storage api: unexpected status %d", e.Status)
}

// ErrorMessage extracts the user-facing message from an upstream rejection,
// falling back to the given generic message for anything else.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// do issues one request. A JSON body is encoded when in is non-nil and
// contentType is empty; a multipart payload passes its reader and the
// boundary-bearing content type straight through so the transport header
// matches the body. The bearer token is attached whenever a session exists.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, in, out interface{}) error {
	if in != nil {
		b := &bytes.Buffer{}
		if err := json.NewEncoder(b).Encode(in); err != nil {
			return err
		}
		body = b
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		if out != nil {
			return json.NewDecoder(res.Body).Decode(out)
		}
		return nil
	}

	apiErr := &APIError{Status: res.StatusCode}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else {
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}

// Login exchanges credentials for a bearer token. The token is returned,
// not stored; the caller owns the session lifecycle.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	in := map[string]string{"email": email, "password": password}
	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", "", nil, in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// ForgotPassword asks the storage API to mail a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	in := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/forgot-password", "", nil, in, nil)
}

// ResetPassword consumes a reset token together with the new password.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	in := map[string]string{"token": token, "new_password": newPassword}
	return c.do(ctx, http.MethodPost, "/reset-password", "", nil, in, nil)
}

// ListPatients fetches the full patient collection; filtering, sorting and
// pagination all happen on this side.
func (c *Client) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := c.do(ctx, http.MethodGet, "/patients", "", nil, nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// GetPatient fetches one patient by id.
func (c *Client) GetPatient(ctx context.Context, id int) (models.Patient, error) {
	var p models.Patient
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/patients/%d", id), "", nil, nil, &p)
	return p, err
}

// CreatePatient stores a new patient record.
func (c *Client) CreatePatient(ctx context.Context, f models.PatientForm) error {
	return c.do(ctx, http.MethodPost, "/patients", "", nil, f, nil)
}

// UpdatePatient replaces the patient record with the given id.
func (c *Client) UpdatePatient(ctx context.Context, id int, f models.PatientForm) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/patients/%d", id), "", nil, f, nil)
}

// DeletePatient removes the patient record with the given id.
func (c *Client) DeletePatient(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/patients/%d", id), "", nil, nil, nil)
}

// ListDoctors fetches the full doctor collection.
func (c *Client) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors", "", nil, nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// GetDoctor fetches one doctor by id.
func (c *Client) GetDoctor(ctx context.Context, id int) (models.Doctor, error) {
	var d models.Doctor
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/doctors/%d", id), "", nil, nil, &d)
	return d, err
}

// Upload is a file attachment riding a multipart doctor payload.
type Upload struct {
	Filename string
	Content  io.Reader
}

// CreateDoctor stores a new doctor record. The payload is multipart because
// of the photo; photo may be nil when the form carried none.
func (c *Client) CreateDoctor(ctx context.Context, f models.DoctorForm, photo *Upload) error {
	body, contentType, err := doctorBody(f, photo, false)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/doctors", contentType, body, nil, nil)
}

// UpdateDoctor replaces the doctor record with the given id, carrying the
// existing photo path so the store knows which file it may replace.
func (c *Client) UpdateDoctor(ctx context.Context, id int, f models.DoctorForm, photo *Upload) error {
	body, contentType, err := doctorBody(f, photo, true)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/doctors/%d", id), contentType, body, nil, nil)
}

// DeleteDoctor removes the doctor record with the given id.
func (c *Client) DeleteDoctor(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/doctors/%d", id), "", nil, nil, nil)
}

func doctorBody(f models.DoctorForm, photo *Upload, withCurrent bool) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"name":           f.Name,
		"specialization": f.Specialization,
		"contact":        f.Contact,
	}
	if withCurrent {
		fields["currentPhoto"] = f.CurrentPhoto
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	if photo != nil {
		part, err := w.CreateFormFile("photo", photo.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, photo.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
