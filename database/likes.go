package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrMemberNotFound is returned when a like targets a member that was
// never cached locally.
var ErrMemberNotFound = errors.New("member not found")

// ToggleLike flips the like edge between a user and a member.
// The GovMember row is created from the supplied names the first time any
// user likes that member; an existing row is never updated. The check and
// the insert-or-delete happen inside one transaction so concurrent toggles
// cannot accumulate duplicate edges. It reports whether the member is
// liked after the call.
func (d *DB) ToggleLike(ctx context.Context, userID uint, member GovMember) (bool, error) {
	var liked bool
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(GovMember{ID: member.ID}).FirstOrCreate(&member).Error; err != nil {
			return err
		}

		var existing Like
		err := tx.Where("user_id = ? AND item_id = ?", userID, member.ID).First(&existing).Error
		switch {
		case err == nil:
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			return tx.Create(&Like{UserID: userID, ItemID: member.ID}).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// ToggleLikeByID toggles the like edge for an already-cached member.
// It fails with ErrMemberNotFound when no GovMember row exists, since
// there are no names to create one from.
func (d *DB) ToggleLikeByID(ctx context.Context, userID uint, memberID string) (bool, error) {
	member, err := d.GetGovMember(ctx, memberID)
	if err != nil {
		return false, err
	}
	return d.ToggleLike(ctx, userID, *member)
}

// GetGovMember returns the locally cached member with the given id.
func (d *DB) GetGovMember(ctx context.Context, id string) (*GovMember, error) {
	var member GovMember
	if err := d.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// LikedMembers returns the members the user has liked.
func (d *DB) LikedMembers(ctx context.Context, userID uint) ([]GovMember, error) {
	var members []GovMember
	err := d.db.WithContext(ctx).
		Joins("JOIN likes ON likes.item_id = gov_members.id").
		Where("likes.user_id = ?", userID).
		Order("gov_members.last_name").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// IsLiked reports whether the user has liked the member.
func (d *DB) IsLiked(ctx context.Context, userID uint, memberID string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Like{}).
		Where("user_id = ? AND item_id = ?", userID, memberID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountLikes returns the number of like edges for a user.
func (d *DB) CountLikes(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Like{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
