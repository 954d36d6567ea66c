package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/repository"
)

// InstanceRepository implements repository.Instance for PostgreSQL
type InstanceRepository struct {
	pool *pgxpool.Pool
}

// NewInstanceRepository creates a new InstanceRepository
func NewInstanceRepository(pool *pgxpool.Pool) *InstanceRepository {
	return &InstanceRepository{pool: pool}
}

var (
	_ repository.Instance   = (*InstanceRepository)(nil)
	_ repository.InstanceTx = (*instanceTx)(nil)
)

const instanceSelect = `
	SELECT i.id, i.template_id, t.template_key, i.name, i.description, i.condition,
	       i.current_durability, i.quality_modifier, i.sockets, i.enchantments,
	       i.sharpness, i.balance, i.custom_name, i.custom_flags, i.owner_kind, i.owner_id,
	       i.equipped_slot, i.recipe_id, i.crafted_by_name, i.modifications,
	       i.created_at, i.created_by, i.last_repaired_at
	FROM item_instances i
	JOIN item_templates t ON t.id = i.template_id`

func scanInstance(row pgx.Row) (*domain.ItemInstance, error) {
	var (
		item                                        domain.ItemInstance
		durability, recipeID                        pgtype.Int4
		ownerID, createdBy                          pgtype.Int8
		customName, ownerKind, equipped, craftedBy  pgtype.Text
		lastRepaired                                pgtype.Timestamptz
		sockets, enchantments, flags, modifications []byte
	)
	err := row.Scan(
		&item.ID, &item.TemplateID, &item.TemplateKey, &item.Name, &item.Description, &item.Condition,
		&durability, &item.QualityModifier, &sockets, &enchantments,
		&item.Sharpness, &item.Balance, &customName, &flags, &ownerKind, &ownerID,
		&equipped, &recipeID, &craftedBy, &modifications,
		&item.CreatedAt, &createdBy, &lastRepaired,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(sockets, &item.Sockets); err != nil {
		return nil, fmt.Errorf("%s: sockets: %w", ErrMsgFailedToDecodeInstance, err)
	}
	if err := json.Unmarshal(enchantments, &item.Enchantments); err != nil {
		return nil, fmt.Errorf("%s: enchantments: %w", ErrMsgFailedToDecodeInstance, err)
	}
	if err := json.Unmarshal(flags, &item.CustomFlags); err != nil {
		return nil, fmt.Errorf("%s: custom_flags: %w", ErrMsgFailedToDecodeInstance, err)
	}
	if err := json.Unmarshal(modifications, &item.Modifications); err != nil {
		return nil, fmt.Errorf("%s: modifications: %w", ErrMsgFailedToDecodeInstance, err)
	}

	owner, err := domain.ParseOwner(ownerKind.String, ownerID.Int64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeInstance, err)
	}
	item.Owner = owner
	item.CurrentDurability = ptrInt(durability)
	item.RecipeID = ptrInt(recipeID)
	item.CreatedBy = ptrInt64(createdBy)
	item.LastRepairedAt = ptrTime(lastRepaired)
	item.CustomName = customName.String
	item.EquippedSlot = equipped.String
	item.CraftedByName = craftedBy.String
	return &item, nil
}

func getInstance(ctx context.Context, q querier, query string, id int64) (*domain.ItemInstance, error) {
	item, err := scanInstance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInstance, err)
	}
	return item, nil
}

// GetInstance retrieves an item instance by id. The template is not bound.
func (r *InstanceRepository) GetInstance(ctx context.Context, id int64) (*domain.ItemInstance, error) {
	return getInstance(ctx, r.pool, instanceSelect+` WHERE i.id = $1`, id)
}

// ListContents returns the items held inside the container item
func (r *InstanceRepository) ListContents(ctx context.Context, containerID int64) ([]*domain.ItemInstance, error) {
	rows, err := r.pool.Query(ctx, instanceSelect+`
		WHERE i.owner_kind = $1 AND i.owner_id = $2
		ORDER BY i.id`, string(domain.OwnerContainer), containerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInstances, err)
	}
	defer rows.Close()

	var items []*domain.ItemInstance
	for rows.Next() {
		item, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInstances, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInstances, err)
	}
	return items, nil
}

// BeginTx starts a transaction for mutating item instances
func (r *InstanceRepository) BeginTx(ctx context.Context) (repository.InstanceTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &instanceTx{tx: tx}, nil
}

// instanceTx implements repository.InstanceTx on a pgx transaction
type instanceTx struct {
	tx pgx.Tx
}

func (t *instanceTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *instanceTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetInstanceForUpdate reads an instance and locks its row until the tx ends
func (t *instanceTx) GetInstanceForUpdate(ctx context.Context, id int64) (*domain.ItemInstance, error) {
	return getInstance(ctx, t.tx, instanceSelect+` WHERE i.id = $1 FOR UPDATE OF i`, id)
}

type instanceColumns struct {
	sockets, enchantments, flags, modifications []byte
	ownerKind                                   pgtype.Text
	ownerID                                     pgtype.Int8
}

func encodeInstance(item *domain.ItemInstance) (*instanceColumns, error) {
	var (
		cols instanceColumns
		err  error
	)
	if cols.sockets, err = jsonOr(item.Sockets, EmptyJSONArray); err != nil {
		return nil, fmt.Errorf("%s: sockets: %w", ErrMsgFailedToEncodeInstance, err)
	}
	if cols.enchantments, err = jsonOr(item.Enchantments, EmptyJSONArray); err != nil {
		return nil, fmt.Errorf("%s: enchantments: %w", ErrMsgFailedToEncodeInstance, err)
	}
	if cols.flags, err = jsonOr(item.CustomFlags, EmptyJSONArray); err != nil {
		return nil, fmt.Errorf("%s: custom_flags: %w", ErrMsgFailedToEncodeInstance, err)
	}
	if cols.modifications, err = jsonOr(item.Modifications, EmptyJSONObject); err != nil {
		return nil, fmt.Errorf("%s: modifications: %w", ErrMsgFailedToEncodeInstance, err)
	}
	if !item.Owner.IsZero() {
		cols.ownerKind = pgtype.Text{String: string(item.Owner.Kind()), Valid: true}
		cols.ownerID = pgtype.Int8{Int64: item.Owner.ID(), Valid: true}
	}
	return &cols, nil
}

// InsertInstance stores a new instance and returns its id
func (t *instanceTx) InsertInstance(ctx context.Context, item *domain.ItemInstance) (int64, error) {
	cols, err := encodeInstance(item)
	if err != nil {
		return 0, err
	}

	var id int64
	err = t.tx.QueryRow(ctx, `
		INSERT INTO item_instances (
			template_id, name, description, condition, current_durability, quality_modifier,
			sockets, enchantments, sharpness, balance, custom_name, custom_flags,
			owner_kind, owner_id, equipped_slot, recipe_id, crafted_by_name, modifications,
			created_at, created_by, last_repaired_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id`,
		item.TemplateID, item.Name, item.Description, item.Condition, intPtrToInt4(item.CurrentDurability), item.QualityModifier,
		cols.sockets, cols.enchantments, item.Sharpness, item.Balance, strToText(item.CustomName), cols.flags,
		cols.ownerKind, cols.ownerID, strToText(item.EquippedSlot), intPtrToInt4(item.RecipeID), strToText(item.CraftedByName), cols.modifications,
		item.CreatedAt, int64PtrToInt8(item.CreatedBy), timePtrToTimestamptz(item.LastRepairedAt),
	).Scan(&id)
	if err != nil {
		if isPgError(err, PgErrorCodeForeignKeyViolation) {
			return 0, fmt.Errorf("%w: id %d", domain.ErrTemplateNotFound, item.TemplateID)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertInstance, err)
	}
	return id, nil
}

// UpdateInstance writes back the mutable state of an instance
func (t *instanceTx) UpdateInstance(ctx context.Context, item *domain.ItemInstance) error {
	cols, err := encodeInstance(item)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE item_instances
		SET name = $2, description = $3, condition = $4, current_durability = $5,
		    quality_modifier = $6, sockets = $7, enchantments = $8, sharpness = $9,
		    balance = $10, custom_name = $11, custom_flags = $12, owner_kind = $13,
		    owner_id = $14, equipped_slot = $15, modifications = $16, last_repaired_at = $17
		WHERE id = $1`,
		item.ID, item.Name, item.Description, item.Condition, intPtrToInt4(item.CurrentDurability),
		item.QualityModifier, cols.sockets, cols.enchantments, item.Sharpness,
		item.Balance, strToText(item.CustomName), cols.flags, cols.ownerKind,
		cols.ownerID, strToText(item.EquippedSlot), cols.modifications, timePtrToTimestamptz(item.LastRepairedAt),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateInstance, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, item.ID)
	}
	return nil
}

// DeleteInstance removes an instance
func (t *instanceTx) DeleteInstance(ctx context.Context, id int64) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM item_instances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteInstance, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
	}
	return nil
}
