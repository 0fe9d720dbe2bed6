package repository

import (
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"gorm.io/gorm"
)

type TopicRepo interface {
	ListTopics() ([]grant.Topic, error)
	ListTopicsByAdmin(uid uint) ([]grant.Topic, error)
	GetTopicByID(id uint) (grant.Topic, error)
	GetAdminIDs(topicID uint) ([]uint, error)
	CreateTopic(t *grant.Topic) error
	UpdateTopic(t *grant.Topic) error
	ReplaceAdmins(t *grant.Topic, admins []user.User) error
	WithTx(tx *gorm.DB) TopicRepo
}

type DBTopicRepo struct {
	db *gorm.DB
}

func NewTopicRepo(db *gorm.DB) *DBTopicRepo {
	return &DBTopicRepo{
		db: db,
	}
}

func (r *DBTopicRepo) ListTopics() ([]grant.Topic, error) {
	var topics []grant.Topic
	err := r.db.Preload("Grant").Preload("Admins").Order("grant_id, id").Find(&topics).Error
	return topics, err
}

// ListTopicsByAdmin returns the topics uid administers.
func (r *DBTopicRepo) ListTopicsByAdmin(uid uint) ([]grant.Topic, error) {
	var topics []grant.Topic
	err := r.db.Preload("Grant").Preload("Admins").
		Joins("JOIN topic_admins ta ON ta.topic_id = topics.id").
		Where("ta.user_id = ?", uid).
		Order("topics.grant_id, topics.id").
		Find(&topics).Error
	return topics, err
}

func (r *DBTopicRepo) GetTopicByID(id uint) (grant.Topic, error) {
	var t grant.Topic
	err := r.db.Preload("Grant").Preload("Admins").First(&t, id).Error
	return t, notFound(err)
}

func (r *DBTopicRepo) GetAdminIDs(topicID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("topic_admins").Where("topic_id = ?", topicID).Pluck("user_id", &ids).Error
	return ids, err
}

func (r *DBTopicRepo) CreateTopic(t *grant.Topic) error {
	return r.db.Create(t).Error
}

func (r *DBTopicRepo) UpdateTopic(t *grant.Topic) error {
	return r.db.Omit("Admins", "Grant").Save(t).Error
}

func (r *DBTopicRepo) ReplaceAdmins(t *grant.Topic, admins []user.User) error {
	return r.db.Model(t).Association("Admins").Replace(admins)
}

func (r *DBTopicRepo) WithTx(tx *gorm.DB) TopicRepo {
	if tx == nil {
		return r
	}
	return &DBTopicRepo{
		db: tx,
	}
}
