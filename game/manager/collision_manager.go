package manager

import (
	"tile-snake/game/entity"
	"tile-snake/game/types"
)

// CollisionReport is what happened to the snake after it moved
type CollisionReport struct {
	SelfCollision bool
	FruitsEaten   int
	Head          types.Point
}

type CollisionManager struct {
	fruits *FruitManager
}

func NewCollisionManager(fruits *FruitManager) *CollisionManager {
	return &CollisionManager{
		fruits: fruits,
	}
}

// Check runs the post-move checks. A snake that bit itself is not checked
// against fruit, the round is over.
func (cm *CollisionManager) Check(snake *entity.Snake) CollisionReport {
	report := CollisionReport{Head: snake.GetHead().Position}

	if snake.HasSelfCollision() {
		report.SelfCollision = true
		return report
	}

	report.FruitsEaten = cm.fruits.CheckConsumption(report.Head, snake)
	return report
}
