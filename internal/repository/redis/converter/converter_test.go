package converter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartEntriesSurviveJSONRoundTrip(t *testing.T) {
	conv := NewCartConverterImpl()

	entries := []domain.CartEntry{
		{ProductID: 1, Name: "NeoWave Noise Cancelling Headphones", Price: 3599900, Image: "https://cdn.example.com/1.jpg", Quantity: 2},
		{ProductID: 5, Name: "Ceramic Artisan Coffee Set", Price: 779900, Image: "https://cdn.example.com/5.jpg", Quantity: 1},
	}

	data, err := json.Marshal(conv.ToArrRedisModel(entries))
	require.NoError(t, err)

	var models []CartEntryRedisModel
	require.NoError(t, json.Unmarshal(data, &models))

	assert.Equal(t, entries, conv.ToArrEntity(models))
}

func TestChatTranscriptSurvivesJSONRoundTrip(t *testing.T) {
	conv := NewChatConverterImpl()

	ts := time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC)
	messages := []domain.ChatMessage{
		{Role: domain.RoleModel, Content: "স্বাগতম!", Timestamp: ts},
		{Role: domain.RoleUser, Content: "ট্রেন্ড কী?", Timestamp: ts.Add(time.Minute)},
		{
			Role:      domain.RoleModel,
			Content:   "বাজারে এখন এটা জনপ্রিয়",
			Timestamp: ts.Add(2 * time.Minute),
			Sources:   []domain.Source{{URI: "https://example.com/trend", Title: "Trend report"}},
		},
	}

	data, err := json.Marshal(conv.ToArrRedisModel(messages))
	require.NoError(t, err)

	var models []ChatMessageRedisModel
	require.NoError(t, json.Unmarshal(data, &models))

	assert.Equal(t, messages, conv.ToArrEntity(models))
}
