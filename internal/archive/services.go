package archive

import "github.com/zhulik/pal"

func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide(&Archive{}),
	)
}
