package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fetan/internal/domain/entity"
	"fetan/internal/domain/repository"
	apperrors "fetan/pkg/errors"
)

type postgresChatRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresChatRepository(pool *pgxpool.Pool) repository.ChatRepository {
	return &postgresChatRepository{pool: pool}
}

// orderPair normalizes an unordered participant pair for storage, so one
// row exists per pair regardless of who initiated.
func orderPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

const conversationColumns = `id, participant_a, participant_b, last_message,
	last_message_at, unread_count, created_at`

func (r *postgresChatRepository) CreateConversation(ctx context.Context, conv *entity.Conversation) error {
	const query = `
		INSERT INTO conversations (id, participant_a, participant_b,
			last_message, last_message_at, unread_count, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`

	a, b := orderPair(conv.Participants[0], conv.Participants[1])
	_, err := r.pool.Exec(ctx, query,
		conv.ID, a, b, conv.LastMessage, conv.LastMessageAt,
		conv.UnreadCount, conv.CreatedAt,
	)
	if err != nil {
		return apperrors.RemoteBackend(err)
	}
	return nil
}

func (r *postgresChatRepository) GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+conversationColumns+` FROM conversations WHERE id=$1`, id)
	conv, err := scanConversation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("Conversation", err)
	}
	if err != nil {
		return nil, apperrors.RemoteBackend(err)
	}
	return conv, nil
}

func (r *postgresChatRepository) FindByParticipants(ctx context.Context, userA, userB string) (*entity.Conversation, error) {
	a, b := orderPair(userA, userB)
	row := r.pool.QueryRow(ctx,
		`SELECT `+conversationColumns+` FROM conversations WHERE participant_a=$1 AND participant_b=$2`, a, b)
	conv, err := scanConversation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("Conversation", err)
	}
	if err != nil {
		return nil, apperrors.RemoteBackend(err)
	}
	return conv, nil
}

func (r *postgresChatRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	const query = `SELECT ` + conversationColumns + ` FROM conversations
		WHERE participant_a=$1 OR participant_b=$1
		ORDER BY last_message_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.RemoteBackend(err)
	}
	defer rows.Close()

	var convos []*entity.Conversation
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, apperrors.RemoteBackend(err)
		}
		convos = append(convos, conv)
	}
	return convos, rows.Err()
}

// AppendMessage stores the message and the conversation's last-message
// cache in one transaction.
func (r *postgresChatRepository) AppendMessage(ctx context.Context, message *entity.DirectMessage, incrementUnread bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperrors.RemoteBackend(err)
	}
	defer tx.Rollback(ctx)

	const insertMessage = `
		INSERT INTO messages (id, conversation_id, sender_id, content, created_at, read)
		VALUES ($1,$2,$3,$4,$5,$6)`
	if _, err := tx.Exec(ctx, insertMessage,
		message.ID, message.ConversationID, message.SenderID,
		message.Content, message.CreatedAt, message.Read,
	); err != nil {
		return apperrors.RemoteBackend(err)
	}

	unreadDelta := 0
	if incrementUnread {
		unreadDelta = 1
	}
	const updateConversation = `
		UPDATE conversations
		SET last_message=$1, last_message_at=$2, unread_count=unread_count+$3
		WHERE id=$4`
	cmd, err := tx.Exec(ctx, updateConversation,
		message.Content, message.CreatedAt, unreadDelta, message.ConversationID)
	if err != nil {
		return apperrors.RemoteBackend(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NotFound("Conversation", nil)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.RemoteBackend(err)
	}
	return nil
}

func (r *postgresChatRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.DirectMessage, error) {
	const query = `
		SELECT id, conversation_id, sender_id, content, created_at, read
		FROM messages WHERE conversation_id=$1
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, apperrors.RemoteBackend(err)
	}
	defer rows.Close()

	var messages []*entity.DirectMessage
	for rows.Next() {
		var m entity.DirectMessage
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.CreatedAt, &m.Read); err != nil {
			return nil, apperrors.RemoteBackend(err)
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

func scanConversation(row pgx.Row) (*entity.Conversation, error) {
	var conv entity.Conversation
	var a, b string
	err := row.Scan(&conv.ID, &a, &b, &conv.LastMessage,
		&conv.LastMessageAt, &conv.UnreadCount, &conv.CreatedAt)
	if err != nil {
		return nil, err
	}
	conv.Participants = []string{a, b}
	return &conv, nil
}
