package logic

import (
	"ai_digest/dto"
	"github.com/samber/lo"
)

// Partition splits items into those with an image and those without, keeping relative order.
func Partition(items []*dto.Item) (withImage, withoutImage []*dto.Item) {
	return lo.FilterReject(items, func(itm *dto.Item, _ int) bool {
		return itm.HasImage()
	})
}
