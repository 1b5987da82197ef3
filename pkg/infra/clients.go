package infra

import (
	"github.com/m-mizutani/alertsnap/pkg/domain/interfaces"
	"github.com/m-mizutani/alertsnap/pkg/repository/file"
)

type Clients struct {
	github    interfaces.GitHub
	storage   interfaces.Storage
	publisher interfaces.Publisher
}

type Option func(*Clients)

// New returns Clients storing artifacts under the working directory unless
// WithStorage says otherwise. GitHub and Publisher are nil until set.
func New(options ...Option) *Clients {
	client := &Clients{
		storage: file.New(""),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Storage() interfaces.Storage {
	return x.storage
}
func (x *Clients) Publisher() interfaces.Publisher {
	return x.publisher
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithStorage(storage interfaces.Storage) Option {
	return func(x *Clients) {
		x.storage = storage
	}
}

func WithPublisher(publisher interfaces.Publisher) Option {
	return func(x *Clients) {
		x.publisher = publisher
	}
}
