package advisor

import (
	"testing"

	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/hothat-pawa/go-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestBuildContentsMapsHistoryRoles(t *testing.T) {
	adv := &GeminiAdvisor{}

	req := usecase.NewAdviseReq("দাম কত?", []usecase.ChatTurn{
		{Role: domain.RoleModel, Text: "স্বাগতম!"},
		{Role: domain.RoleUser, Text: "হেডফোন আছে?"},
	}, nil, nil)

	contents, err := adv.buildContents(req)
	require.NoError(t, err)
	require.Len(t, contents, 3)

	assert.Equal(t, string(genai.RoleModel), contents[0].Role)
	assert.Equal(t, "স্বাগতম!", contents[0].Parts[0].Text)
	assert.Equal(t, string(genai.RoleUser), contents[1].Role)

	// последний элемент — текущий ход от пользователя
	assert.Equal(t, string(genai.RoleUser), contents[2].Role)
	assert.Contains(t, contents[2].Parts[0].Text, "দাম কত?")
}

func TestBuildContentsIncludesCatalogAndImage(t *testing.T) {
	adv := &GeminiAdvisor{}

	image := &domain.InlineImage{Data: []byte{0xFF, 0xD8}, MimeType: "image/jpeg"}
	req := usecase.NewAdviseReq("এটা কি আছে?", nil, []usecase.ProductSnapshot{
		{Name: "NeoWave Noise Cancelling Headphones", Price: "35999"},
	}, image)

	contents, err := adv.buildContents(req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	parts := contents[0].Parts
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0].Text, "NeoWave Noise Cancelling Headphones")
	assert.Contains(t, parts[0].Text, "35999")

	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "image/jpeg", parts[1].InlineData.MIMEType)
	assert.Equal(t, image.Data, parts[1].InlineData.Data)
}
