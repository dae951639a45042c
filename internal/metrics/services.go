package metrics

import "github.com/zhulik/pal"

func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide(&Collector{}),
		pal.Provide(&HTTPServer{}),
	)
}
