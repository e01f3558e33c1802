package routes

import (
	"cofound_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for S3-related operations
func RegisterS3Routes(r *mux.Router) {
	s3Router := r.PathPrefix("/api/s3").Subrouter()
	s3Router.HandleFunc("/upload-url", controllers.GeneratePresignedURL).Methods("POST")
	s3Router.HandleFunc("/read-url", controllers.GenerateReadURL).Methods("GET")
}
