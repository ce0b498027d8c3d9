package repository

import (
	"sync"

	"taskboard/internal/core/model"
)

type inMemoryUserRepository struct {
	users map[string]*model.User
	mutex sync.RWMutex
}

func NewInMemoryUserRepository() UserRepository {
	return &inMemoryUserRepository{
		users: make(map[string]*model.User),
	}
}

func (r *inMemoryUserRepository) Create(user *model.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *inMemoryUserRepository) Update(user *model.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *inMemoryUserRepository) FindByEmail(email string) (*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepository) FindByName(name string) (*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, user := range r.users {
		if user.Name == name {
			return user, nil
		}
	}
	return nil, nil
}
