package client

import (
	"github.com/user/onmovie/internal/model"
)

func ptr(s string) *string { return &s }

// SampleMovies is the static fallback dataset for movie listings. It keeps
// demo pages populated when the aggregation service is unreachable.
var SampleMovies = []model.CatalogItem{
	{
		ID:       558449,
		Slug:     "558449",
		Title:    "Gladiator II",
		Poster:   ptr("https://image.tmdb.org/t/p/w500/2cxhvwyEwRlysAmRH4iodkvo0z5.jpg"),
		Backdrop: ptr("https://image.tmdb.org/t/p/w500/euYIwmwkmz95mnXvufEmbL6ovhZ.jpg"),
		Rating:   "8.5",
		Year:     "2024",
		Synopsis: "Years after witnessing the death of Maximus at the hands of his uncle, Lucius must enter the Colosseum and fight for his life and freedom.",
		Quality:  "HD",
		Genres:   []int{28, 12, 18},
	},
	{
		ID:       402431,
		Slug:     "402431",
		Title:    "Wicked",
		Poster:   ptr("https://image.tmdb.org/t/p/w500/c5Tqxeo1UpBvnAc3csUm7j3hlQl.jpg"),
		Backdrop: ptr("https://image.tmdb.org/t/p/w500/uVlUu174iiKhsUGqnOSy46eIIMU.jpg"),
		Rating:   "7.8",
		Year:     "2024",
		Synopsis: "Elphaba, a young woman misunderstood because of her unusual green skin, forms an unlikely friendship with Glinda.",
		Quality:  "HD",
		Genres:   []int{18, 14, 10749},
	},
	{
		ID:       1241982,
		Slug:     "1241982",
		Title:    "Moana 2",
		Poster:   ptr("https://image.tmdb.org/t/p/w500/4YZpsylmjHbqeWzjKpUEF8gcLNW.jpg"),
		Backdrop: ptr("https://image.tmdb.org/t/p/w500/tElnmtQ6yz1PjN1kePNl8yMSb59.jpg"),
		Rating:   "7.5",
		Year:     "2024",
		Synopsis: "Moana journeys to the far seas of Oceania after receiving an unexpected call from her wayfinding ancestors.",
		Quality:  "HD",
		Genres:   []int{16, 12, 10751},
	},
	{
		ID:       845781,
		Slug:     "845781",
		Title:    "Red One",
		Poster:   ptr("https://image.tmdb.org/t/p/w500/cdqLnri3NEGcmfnqwk2TSIYtddg.jpg"),
		Backdrop: ptr("https://image.tmdb.org/t/p/w500/3V4kLQg0kSqPLctI5ziYWabAZYF.jpg"),
		Rating:   "7.2",
		Year:     "2024",
		Synopsis: "After Santa Claus is kidnapped, the North Pole Head of Security must team up with a bounty hunter to save Christmas.",
		Quality:  "HD",
		Genres:   []int{28, 35, 14},
	},
	{
		ID:       912649,
		Slug:     "912649",
		Title:    "Venom: The Last Dance",
		Poster:   ptr("https://image.tmdb.org/t/p/w500/k42Owka8v91Xn6p8CO66tkrJfVE.jpg"),
		Backdrop: ptr("https://image.tmdb.org/t/p/w500/3m0j3hCS8kMAaP9El6rXQSWu1Iq.jpg"),
		Rating:   "6.8",
		Year:     "2024",
		Synopsis: "Eddie and Venom are on the run. Hunted by both of their worlds, they are forced to make a devastating decision.",
		Quality:  "HD",
		Genres:   []int{28, 878, 12},
	},
	{
		ID:       889737,
		Slug:     "889737",
		Title:    "Joker: Folie à Deux",
		Poster:   ptr("https://image.tmdb.org/t/p/w500/aciP8Km0waTLXEYf5ybFK5CSUxl.jpg"),
		Backdrop: ptr("https://image.tmdb.org/t/p/w500/reNf6GBzOe48l9WEnFOxXsxNiAd.jpg"),
		Rating:   "5.8",
		Year:     "2024",
		Synopsis: "While struggling with his dual identity, Arthur Fleck stumbles upon true love and finds the music that's always been inside him.",
		Quality:  "HD",
		Genres:   []int{18, 80, 53},
	},
}

// SampleSeries is the static fallback dataset for series listings.
var SampleSeries = []model.CatalogItem{
	{
		ID:       93405,
		Slug:     "93405",
		Title:    "Squid Game",
		Poster:   ptr("https://image.tmdb.org/t/p/w500/dDlEmu3EZ0Pgg93K2SVNLCjCSvE.jpg"),
		Backdrop: ptr("https://image.tmdb.org/t/p/w500/2meX1nMdScFOoV4370rqHWKmXhY.jpg"),
		Rating:   "7.8",
		Year:     "2021",
		Synopsis: "Hundreds of cash-strapped players accept a strange invitation to compete in children's games with deadly high stakes.",
		Quality:  "HD",
		Genres:   []int{10759, 9648, 18},
	},
	{
		ID:       119051,
		Slug:     "119051",
		Title:    "Wednesday",
		Poster:   ptr("https://image.tmdb.org/t/p/w500/9PFonBhy4cQy7Jz20NpMygczOkv.jpg"),
		Backdrop: ptr("https://image.tmdb.org/t/p/w500/iHSwvRVsRyxpX7FE7GbviaDvgGZ.jpg"),
		Rating:   "8.5",
		Year:     "2022",
		Synopsis: "Wednesday Addams investigates a murder spree while making new friends and foes at Nevermore Academy.",
		Quality:  "HD",
		Genres:   []int{10765, 9648, 35},
	},
	{
		ID:       194764,
		Slug:     "194764",
		Title:    "The Penguin",
		Poster:   ptr("https://image.tmdb.org/t/p/w500/vOWcqC4oDQws1doDWLO7d3dh5qc.jpg"),
		Backdrop: ptr("https://image.tmdb.org/t/p/w500/vf6qPMwmeRVAsTNQlpVSLZ9Rtzp.jpg"),
		Rating:   "8.6",
		Year:     "2024",
		Synopsis: "Oswald Cobb fights to seize the reins of Gotham's criminal underworld in the wake of the Riddler's attack.",
		Quality:  "HD",
		Genres:   []int{80, 18},
	},
	{
		ID:       94605,
		Slug:     "94605",
		Title:    "Arcane",
		Poster:   ptr("https://image.tmdb.org/t/p/w500/abf8tHznhSvl9BAElD2cQeRr7do.jpg"),
		Backdrop: ptr("https://image.tmdb.org/t/p/w500/wQEW3xLrQAThu1GvqpsKQyejrYS.jpg"),
		Rating:   "8.8",
		Year:     "2021",
		Synopsis: "Amid the stark discord of twin cities Piltover and Zaun, two sisters fight on rival sides of a war between magic technologies.",
		Quality:  "HD",
		Genres:   []int{16, 10765, 18},
	},
}
