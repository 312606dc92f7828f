package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ConnectionSettings configures a connection-request campaign
type ConnectionSettings struct {
	DailyLimit int    `json:"dailyLimit"`
	TargetRole string `json:"targetRole,omitempty"`
}

// MessageSettings configures a follow-up message campaign
type MessageSettings struct {
	MessageTemplate string `json:"messageTemplate"`
}

// EngagementSettings configures a like/comment engagement campaign
type EngagementSettings struct {
	LikesPerDay    int `json:"likesPerDay"`
	CommentsPerDay int `json:"commentsPerDay"`
}

// ContentSettings configures a content-sharing campaign
type ContentSettings struct {
	PostsPerWeek int      `json:"postsPerWeek"`
	Topics       []string `json:"topics,omitempty"`
}

// ValidateSettings checks that raw decodes cleanly into the settings variant
// for the given campaign type. An empty or null blob is always valid; the
// settings themselves are optional.
func ValidateSettings(campaignType string, raw JSON) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var target interface{}
	switch campaignType {
	case CampaignTypeConnection:
		target = &ConnectionSettings{}
	case CampaignTypeMessage:
		target = &MessageSettings{}
	case CampaignTypeEngagement:
		target = &EngagementSettings{}
	case CampaignTypeContent:
		target = &ContentSettings{}
	default:
		return fmt.Errorf("unknown campaign type %q", campaignType)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("settings do not match a %s campaign: %w", campaignType, err)
	}
	return nil
}
