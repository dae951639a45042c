package syncing

import (
	"github.com/zhulik/pal"

	"roost/internal/persistence/authors"
	"roost/internal/persistence/posts"
)

func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide(&authors.Repository{}),
		pal.Provide(&posts.Repository{}),
		pal.Provide(&Syncer{}),
	)
}
