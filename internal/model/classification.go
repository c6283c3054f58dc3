package model

// IssueType is the coarse bug/feature/docs bucket.
type IssueType string

const (
	TypeBug            IssueType = "Bug"
	TypeFeatureRequest IssueType = "Feature Request"
	TypeDocumentation  IssueType = "Documentation"
)

// Sentiment is the reporter-tone bucket derived from title and body.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// Confidence is the qualitative strength of a taxonomy match,
// derived from the numeric match score.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// CodeOther is the sentinel taxonomy code for "no confident match".
// It is an explicit outcome, distinct from an uncomputed classification.
const CodeOther = "Other"

// ClassificationResult is the full classification attached to an issue.
// Created once per issue and never mutated afterward.
type ClassificationResult struct {
	IssueType  IssueType  `json:"issue_type"`
	Summary    string     `json:"summary"`
	Sentiment  Sentiment  `json:"sentiment"`
	L1Code     string     `json:"l1_tag"`
	L1Category string     `json:"l1_category"`
	L2Code     string     `json:"l2_tag"`
	L2Category string     `json:"l2_category"`
	Confidence Confidence `json:"confidence"`
	Notes      string     `json:"tagging_notes,omitempty"`
}
