package controllers

import (
	"encoding/json"
	"net/http"

	"cofound_server/services"
)

// GeneratePresignedURL handles generating a pre-signed URL for uploading an
// image to S3.
func GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.FileName == "" || request.FileType == "" {
		http.Error(w, "fileName and fileType are required", http.StatusBadRequest)
		return
	}

	url, key, err := services.GenerateUploadURL(request.FileName, request.FileType)
	if err != nil {
		http.Error(w, "Failed to generate pre-signed URL: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"uploadURL": url,
		"key":       key,
	})
}

// GenerateReadURL handles generating a pre-signed URL for reading a stored
// image.
func GenerateReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}

	url, err := services.GenerateReadURL(key)
	if err != nil {
		http.Error(w, "Failed to generate read URL: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"url": url,
	})
}
