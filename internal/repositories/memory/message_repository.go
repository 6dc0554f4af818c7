package memory

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type MessageRepository struct {
	messages *table[models.CustomerMessage]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{messages: newTable[models.CustomerMessage]()}
}

func (r *MessageRepository) Create(_ context.Context, msg *models.CustomerMessage) error {
	ensureID(&msg.ID)
	return r.messages.insert(msg.ID, *msg)
}

func (r *MessageRepository) Get(_ context.Context, id string) (*models.CustomerMessage, error) {
	m, err := r.messages.get(id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) List(context.Context) ([]models.CustomerMessage, error) {
	return r.messages.all(), nil
}

func (r *MessageRepository) Update(_ context.Context, msg *models.CustomerMessage) error {
	return r.messages.update(msg.ID, func(m *models.CustomerMessage) error {
		createdAt := m.CreatedAt
		*m = *msg
		if m.CreatedAt.IsZero() {
			m.CreatedAt = createdAt
		}
		return nil
	})
}

func (r *MessageRepository) Delete(_ context.Context, id string) error {
	return r.messages.remove(id)
}
