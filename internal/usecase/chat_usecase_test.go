package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatUCForTest(advisor *fakeAdvisor) (*ChatUseCase, *fakeChatRepo) {
	repo := newFakeChatRepo()
	catalog := &memoryCatalog{products: DefaultProducts()}
	return NewChatUC(repo, catalog, advisor, nopLogger{}, 5), repo
}

func TestChatSubmitAppendsUserAndModelMessages(t *testing.T) {
	advisor := &fakeAdvisor{reply: "ভালো পছন্দ!"}
	uc, repo := newChatUCForTest(advisor)

	reply, err := uc.Submit(context.Background(), testSession, "হেডফোন আছে?", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleModel, reply.Role)
	assert.Equal(t, "ভালো পছন্দ!", reply.Content)

	transcript := repo.transcripts[testSession]
	// приветствие + вопрос + ответ
	require.Len(t, transcript, 3)
	assert.Equal(t, WelcomeMessage, transcript[0].Content)
	assert.Equal(t, domain.RoleUser, transcript[1].Role)
	assert.Equal(t, domain.RoleModel, transcript[2].Role)
}

func TestChatTranscriptSeededWithWelcome(t *testing.T) {
	uc, _ := newChatUCForTest(&fakeAdvisor{reply: "ok"})

	history, err := uc.History(context.Background(), testSession)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.RoleModel, history[0].Role)
	assert.Equal(t, WelcomeMessage, history[0].Content)
}

func TestChatAdvisorFailureProducesSingleFallback(t *testing.T) {
	advisor := &fakeAdvisor{err: errors.New("quota exceeded")}
	uc, repo := newChatUCForTest(advisor)
	ctx := context.Background()

	reply, err := uc.Submit(ctx, testSession, "দাম কত?", nil)
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply.Content)

	fallbacks := 0
	for _, msg := range repo.transcripts[testSession] {
		if msg.Content == FallbackReply {
			fallbacks++
		}
	}
	assert.Equal(t, 1, fallbacks)

	// следующий ход принимается: сессия вернулась в idle
	advisor.err = nil
	advisor.reply = "আবার স্বাগতম"
	reply, err = uc.Submit(ctx, testSession, "আবার চেষ্টা", nil)
	require.NoError(t, err)
	assert.Equal(t, "আবার স্বাগতম", reply.Content)
}

func TestChatRejectsConcurrentTurn(t *testing.T) {
	uc, repo := newChatUCForTest(&fakeAdvisor{reply: "ok"})

	repo.locks[testSession] = true

	_, err := uc.Submit(context.Background(), testSession, "হেলো", nil)
	require.ErrorIs(t, err, e.ErrChatBusy)
}

func TestChatRejectsEmptySubmit(t *testing.T) {
	uc, repo := newChatUCForTest(&fakeAdvisor{reply: "ok"})

	_, err := uc.Submit(context.Background(), testSession, "   ", nil)
	require.ErrorIs(t, err, e.ErrEmptyMessage)
	assert.False(t, repo.locks[testSession])
}

func TestChatImageOnlySubmitAccepted(t *testing.T) {
	advisor := &fakeAdvisor{reply: "ছবিটা দেখলাম"}
	uc, _ := newChatUCForTest(advisor)

	image := &domain.InlineImage{Data: []byte{0xFF, 0xD8}, MimeType: "image/jpeg"}
	_, err := uc.Submit(context.Background(), testSession, "", image)
	require.NoError(t, err)
	require.NotNil(t, advisor.lastReq)
	assert.Equal(t, image, advisor.lastReq.Image)
}

func TestChatHistoryWindowBoundsAdvisorContext(t *testing.T) {
	advisor := &fakeAdvisor{reply: "ok"}
	uc, _ := newChatUCForTest(advisor)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := uc.Submit(ctx, testSession, "প্রশ্ন", nil)
		require.NoError(t, err)
	}

	// история ограничена окном и не включает только что отправленное сообщение
	require.Len(t, advisor.lastReq.History, 5)
	for _, turn := range advisor.lastReq.History {
		assert.NotEmpty(t, turn.Role)
		assert.NotEmpty(t, turn.Text)
	}
}

func TestChatAdvisorReceivesCatalogSnapshot(t *testing.T) {
	advisor := &fakeAdvisor{reply: "ok"}
	uc, _ := newChatUCForTest(advisor)

	_, err := uc.Submit(context.Background(), testSession, "কি কি আছে?", nil)
	require.NoError(t, err)

	require.Len(t, advisor.lastReq.Products, 9)
	first := advisor.lastReq.Products[0]
	assert.Equal(t, "NeoWave Noise Cancelling Headphones", first.Name)
	// цена уходит советнику в таках
	assert.Equal(t, "35999", first.Price)
}

func TestChatSourcesPreserved(t *testing.T) {
	advisor := &fakeAdvisor{
		reply:   "বাজারে এখন এটা জনপ্রিয়",
		sources: []domain.Source{{URI: "https://example.com/trend", Title: "Trend report"}},
	}
	uc, _ := newChatUCForTest(advisor)

	reply, err := uc.Submit(context.Background(), testSession, "ট্রেন্ড কী?", nil)
	require.NoError(t, err)
	require.Len(t, reply.Sources, 1)
	assert.Equal(t, "https://example.com/trend", reply.Sources[0].URI)
}
