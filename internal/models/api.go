package models

import (
	"encoding/json"
	"errors"
)

// Profile is the caller-supplied learner profile. It is accepted as any JSON object and
// passed through untouched.
type Profile map[string]interface{}

type QueryRequest struct {
	UserID  string  `json:"user_id"`
	Query   string  `json:"query"`
	Profile Profile `json:"profile"`
}

type QueryResponse struct {
	Response string `json:"response"`
}

type FeedbackRequest struct {
	UserID   string  `json:"user_id"`
	QueryID  string  `json:"query_id"`
	Rating   int     `json:"rating"`
	Comments *string `json:"comments,omitempty"`
}

type FeedbackResponse struct {
	Message string `json:"message"`
}

// Wire payloads. Pointer fields make "required" mean present and non-null, so "" for a
// string and 0 for the rating stay valid. Keys are matched exactly: "Query" does not
// fill query.

type exactField struct {
	key string
	dst interface{}
}

// decodeExact fills each field only from the key with its exact name.
func decodeExact(data []byte, fields []exactField) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, f := range fields {
		value, ok := raw[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, f.dst); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field == "" {
				typeErr.Field = f.key
			}
			return err
		}
	}
	return nil
}

type QueryPayload struct {
	UserID  *string  `json:"user_id" binding:"required"`
	Query   *string  `json:"query" binding:"required"`
	Profile *Profile `json:"profile" binding:"required"`
}

func (p *QueryPayload) UnmarshalJSON(data []byte) error {
	*p = QueryPayload{}
	return decodeExact(data, []exactField{
		{"user_id", &p.UserID},
		{"query", &p.Query},
		{"profile", &p.Profile},
	})
}

func (p QueryPayload) ToRequest() QueryRequest {
	return QueryRequest{
		UserID:  *p.UserID,
		Query:   *p.Query,
		Profile: *p.Profile,
	}
}

type FeedbackPayload struct {
	UserID   *string `json:"user_id" binding:"required"`
	QueryID  *string `json:"query_id" binding:"required"`
	Rating   *int    `json:"rating" binding:"required"`
	Comments *string `json:"comments"`
}

func (p *FeedbackPayload) UnmarshalJSON(data []byte) error {
	*p = FeedbackPayload{}
	return decodeExact(data, []exactField{
		{"user_id", &p.UserID},
		{"query_id", &p.QueryID},
		{"rating", &p.Rating},
		{"comments", &p.Comments},
	})
}

func (p FeedbackPayload) ToRequest() FeedbackRequest {
	return FeedbackRequest{
		UserID:   *p.UserID,
		QueryID:  *p.QueryID,
		Rating:   *p.Rating,
		Comments: p.Comments,
	}
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Services  map[string]string `json:"services"`
}
