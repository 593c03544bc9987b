package models

import (
	"github.com/mmdatafocus/warehouse_backend/utils"
)

type RedisCleaner interface {
	RemoveInstanceRedis() error // remove one
	RemoveAllRedis() error      // remove list if exists
}

// remove both item & list
func RemoveRedisBoth[T RedisCleaner](obj T) error {
	if err := obj.RemoveInstanceRedis(); err != nil {
		return err
	}
	if err := obj.RemoveAllRedis(); err != nil {
		return err
	}
	return nil
}

func (obj Bizplace) RemoveInstanceRedis() error {
	return utils.RemoveRedis[Bizplace](obj.ID, "")
}

func (obj Bizplace) RemoveAllRedis() error {
	return utils.RemoveRedis[Bizplace](0, obj.DomainId)
}

func (obj Product) RemoveInstanceRedis() error {
	return utils.RemoveRedis[Product](obj.ID, "")
}

func (obj Product) RemoveAllRedis() error {
	return utils.RemoveRedis[Product](0, obj.DomainId)
}

func (obj Warehouse) RemoveInstanceRedis() error {
	return utils.RemoveRedis[Warehouse](obj.ID, "")
}

func (obj Warehouse) RemoveAllRedis() error {
	return utils.RemoveRedis[Warehouse](0, obj.DomainId)
}

func (obj Location) RemoveInstanceRedis() error {
	return utils.RemoveRedis[Location](obj.ID, "")
}

func (obj Location) RemoveAllRedis() error {
	return utils.RemoveRedis[Location](0, obj.DomainId)
}
