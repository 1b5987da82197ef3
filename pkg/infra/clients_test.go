package infra_test

import (
	"testing"

	"github.com/m-mizutani/alertsnap/pkg/domain/mock"
	"github.com/m-mizutani/alertsnap/pkg/infra"
	"github.com/m-mizutani/alertsnap/pkg/repository/file"
	"github.com/m-mizutani/alertsnap/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		_, ok := clients.Storage().(*file.Storage)
		gt.True(t, ok)
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.Publisher()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithStorage option replaces default storage", func(t *testing.T) {
		storage := memory.New()
		clients := infra.New(infra.WithStorage(storage))
		gt.V(t, clients.Storage()).Equal(storage)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockPub := &mock.PublisherMock{}
		storage := memory.New()

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithStorage(storage),
			infra.WithPublisher(mockPub),
		)

		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.Storage()).Equal(storage)
		gt.V(t, clients.Publisher()).Equal(mockPub)
	})
}
