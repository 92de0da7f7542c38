package storefront

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func (p *Pages) Home() g.Node {
	return p.document(
		p.Brand+" | Unique Shopping Experience",
		"Discover unique gifts and thoughtful collections for every occasion.",
		scrollBar(),
		p.navbar("/"),
		h.Main(h.Class("w-full bg-white overflow-hidden"),
			hero(),
			p.collections(),
			vision(),
		),
		p.footer(),
	)
}

func hero() g.Node {
	return h.Section(h.Class("relative min-h-[90vh] flex items-center justify-center overflow-hidden"),
		h.Div(h.Class("absolute inset-0 z-0"),
			h.Img(
				h.Src("https://cdn.wallpapersafari.com/89/8/lybQgH.jpg"),
				h.Alt("Elegant Gift Background"),
				h.Class("w-full h-full object-cover filter brightness-50"),
			),
		),
		h.Div(h.Class("relative z-10 container mx-auto max-w-4xl px-4"),
			h.Div(h.Class("bg-white/20 backdrop-blur-md border border-white/30 p-12 md:p-16 rounded-3xl shadow-2xl text-center"),
				h.H1(h.Class("mb-6 text-5xl md:text-6xl font-extrabold tracking-tight "+gradientText),
					g.Text("Crafting Memorable Moments"),
				),
				h.P(h.Class("mb-8 text-xl text-white/90 max-w-2xl mx-auto"),
					g.Text("Transforming ordinary moments into extraordinary memories with our curated collections"),
				),
				h.Div(h.Class("space-x-4 flex justify-center"),
					h.A(h.Href("/about"),
						h.Class("bg-white/20 backdrop-blur-md border border-white/30 text-white hover:bg-white/30 px-10 py-3 rounded-full uppercase text-sm tracking-wider font-semibold shadow-xl transition-all"),
						g.Text("Explore Our Story"),
					),
					h.A(h.Href("/shop"), h.Class(pillButtonPrimary), g.Text("Shop Now")),
				),
			),
		),
	)
}

func (p *Pages) collections() g.Node {
	return h.Section(h.ID("collections"), h.Class("px-4 py-20 bg-gray-50"),
		h.Div(h.Class("container mx-auto max-w-6xl"),
			h.Div(h.Class("text-center mb-16"),
				h.H2(h.Class("text-4xl font-extrabold mb-4 "+gradientText), g.Text("Our Collections")),
				h.Div(h.Class("w-24 h-1 bg-gradient-to-r from-blue-500 to-blue-700 mx-auto mb-6")),
				h.P(h.Class("text-gray-600 max-w-2xl mx-auto text-lg"),
					g.Text("Discover meticulously crafted categories designed to inspire and delight"),
				),
			),
			h.Div(h.Class("grid gap-10 md:grid-cols-3"),
				g.Map(p.Categories, categoryCard),
			),
		),
	)
}

func categoryCard(c Category) g.Node {
	return h.A(h.Href("/shop"), g.Attr("data-category", c.Category),
		h.Div(h.Class("bg-white rounded-3xl overflow-hidden shadow-xl hover:shadow-2xl transition-all duration-300 group"),
			h.Div(h.Class("relative h-80 overflow-hidden"),
				h.Img(
					h.Src(c.Image),
					h.Alt(c.Title),
					h.Class("w-full h-full object-cover transition-transform duration-500 group-hover:scale-110"),
					g.Attr("loading", "lazy"),
				),
			),
			h.Div(h.Class("p-6 text-center bg-white"),
				h.H3(h.Class("text-2xl font-bold mb-3 "+gradientText), g.Text(c.Title)),
				h.P(h.Class("text-gray-600"), g.Text(c.Description)),
			),
		),
	)
}

func vision() g.Node {
	return h.Section(h.Class("relative min-h-[80vh] flex items-center"),
		h.Div(h.Class("absolute inset-0 z-0"),
			h.Img(
				h.Src("https://tse3.mm.bing.net/th?id=OIP.RNJBshhRJcxPoSt2Slj5bAHaEK&pid=Api&P=0&h=180"),
				h.Alt("Vision Background"),
				h.Class("w-full h-full object-cover filter brightness-50"),
				g.Attr("loading", "lazy"),
			),
		),
		h.Div(h.Class("container relative z-10 mx-auto max-w-6xl px-4"),
			h.Div(h.Class("bg-white/20 backdrop-blur-md border border-white/30 p-12 md:p-16 rounded-3xl max-w-2xl mx-auto text-center shadow-2xl"),
				h.H2(h.Class("text-5xl font-extrabold mb-8 "+gradientText), g.Text("Our Vision")),
				h.P(h.Class("text-xl text-white/90 mb-10 leading-relaxed"),
					g.Text("We believe in creating more than just products. We craft experiences that connect hearts, "+
						"celebrate relationships, and turn ordinary moments into extraordinary memories. "+
						"Our mission is to be your partner in expressing love, appreciation, and thoughtfulness."),
				),
				h.A(h.Href("/about"), h.Class(pillButtonPrimary), g.Text("Our Journey")),
			),
		),
	)
}
