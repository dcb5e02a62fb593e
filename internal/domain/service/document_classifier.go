package service

import "insureflow/internal/domain/entity"

// DocumentClassifier guesses what kind of document a file is before extraction.
type DocumentClassifier interface {
	// Classify returns the kind to try first for the file at position index of a batch.
	Classify(filename string, index int) entity.DocumentKind
}
