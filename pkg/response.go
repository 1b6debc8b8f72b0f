package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, body []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		log.Errorf("write response (status %d, %d bytes): %s", statusCode, len(body), err)
	}
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), http.StatusOK)
}

// WriteJSON marshals the value and writes it with the given status code.
// A marshal failure results in a 500 with a plain text body.
func WriteJSON(w http.ResponseWriter, value any, statusCode int) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("marshal response value: %s", err)
		http.Error(w, "marshal response error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, valueBytes, statusCode)
}
