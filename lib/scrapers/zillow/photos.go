package zillow

import "github.com/PuerkitoBio/goquery"

// extractPhotos returns the photo urls in page order. The anchor
// target is preferred over the img source since the former points at
// the full-size asset. No photo container is not an error.
func extractPhotos(doc *goquery.Document) []string {
	photos := []string{}
	doc.Find(photoListSelector).Each(func(_ int, img *goquery.Selection) {
		target := img.AttrOr("href", img.AttrOr("src", ""))
		if target != "" {
			photos = append(photos, target)
		}
	})
	return photos
}
