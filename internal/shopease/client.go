// Package shopease est le client HTTP vers l'API ShopEase distante. La
// passerelle ne possède aucune donnée : chaque écran se résume à un ou
// plusieurs appels faits ici avec le token de la session de l'appelant.
package shopease

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// API est le client partagé, initialisé au démarrage.
var API *Client

// ErrSessionExpired signale un 401 du backend : la session locale doit être
// vidée et l'utilisateur renvoyé vers /login, jamais de retry.
var ErrSessionExpired = errors.New("session expirée")

// APIError porte un refus du backend autre qu'un 401.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// Init crée le client partagé depuis API_BASE_URL.
func Init() {
	base := os.Getenv("API_BASE_URL")
	if base == "" {
		base = "http://localhost:8080/api"
	}
	API = NewClient(base)
	log.Println("✅ Client ShopEase initialisé :", base)
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// do exécute un appel JSON. Le contexte vient de la requête navigateur :
// si l'utilisateur quitte la page, l'aller-retour est annulé avec elle.
func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	if res.StatusCode >= 400 {
		return &APIError{StatusCode: res.StatusCode, Message: readErrorMessage(res.Body)}
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// readErrorMessage tente d'extraire le message d'erreur JSON du backend
// ("message" ou "error" selon le contrôleur).
func readErrorMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return "requête refusée"
}

// UploadFile relaie une image vers POST /files/upload (multipart) et renvoie
// l'URL publique attribuée par le backend. Le stockage reste côté backend.
func (c *Client) UploadFile(ctx context.Context, token, filename, contentType string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/files/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return "", ErrSessionExpired
	}
	if res.StatusCode >= 400 {
		return "", &APIError{StatusCode: res.StatusCode, Message: readErrorMessage(res.Body)}
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", err
	}
	return payload.URL, nil
}
