package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/metaengine"
	"github.com/eringen/metaengine/headsync"
	"github.com/eringen/metaengine/metaconfig"
)

var previewFlags struct {
	title, description, image, imageType string
	imageWidth, imageHeight              int
	modified, canonical, pageType        string
	origin, path                         string
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the head tags a page would get under the current config",
	Long: `Print the head tags for the example product page shown in the admin preview.
Flags override single fields of that page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pageType := headsync.PageType(previewFlags.pageType)
		if pageType != headsync.Website && pageType != headsync.Article {
			return fmt.Errorf("--type must be %q or %q", headsync.Website, headsync.Article)
		}
		return withStore(func(s *metaconfig.Store) error {
			cfg := s.Config()
			intent := metaengine.PreviewIntent(cfg)
			intent.PageType = pageType
			overridePreview(cmd, &intent)

			href := intent.Canonical
			if href == "" {
				href = previewFlags.origin + previewFlags.path
			}
			loc := headsync.Location{Origin: previewFlags.origin, Href: href}
			fmt.Fprintln(cmd.OutOrStdout(), headsync.Markup(metaengine.PreviewTags(intent, cfg, loc)))
			return nil
		})
	},
}

// overridePreview copies explicitly set flags onto intent.
func overridePreview(cmd *cobra.Command, intent *headsync.Intent) {
	changed := cmd.Flags().Changed
	if changed("title") {
		intent.Title = previewFlags.title
	}
	if changed("description") {
		intent.Description = previewFlags.description
	}
	if changed("image") {
		intent.Image = previewFlags.image
	}
	if changed("image-width") {
		intent.ImageWidth = previewFlags.imageWidth
	}
	if changed("image-height") {
		intent.ImageHeight = previewFlags.imageHeight
	}
	if changed("image-type") {
		intent.ImageType = previewFlags.imageType
	}
	if changed("modified") {
		intent.ModifiedTime = previewFlags.modified
	}
	if changed("canonical") {
		intent.Canonical = previewFlags.canonical
	}
}

func init() {
	f := previewCmd.Flags()
	f.StringVar(&previewFlags.title, "title", "", "page title (default names the configured site)")
	f.StringVar(&previewFlags.description, "description", "", "page description")
	f.StringVar(&previewFlags.image, "image", "", "share image override (path or absolute URL)")
	f.IntVar(&previewFlags.imageWidth, "image-width", 0, "share image width")
	f.IntVar(&previewFlags.imageHeight, "image-height", 0, "share image height")
	f.StringVar(&previewFlags.imageType, "image-type", "", "share image MIME type")
	f.StringVar(&previewFlags.modified, "modified", "", "article modified time")
	f.StringVar(&previewFlags.canonical, "canonical", "", "canonical URL (empty uses --origin and --path)")
	f.StringVar(&previewFlags.pageType, "type", string(headsync.Website), "page type: website or article")
	f.StringVar(&previewFlags.origin, "origin", "https://cartbatterynation.com", "origin used for relative image paths")
	f.StringVar(&previewFlags.path, "path", "/", "page path used for og:url when no canonical is given")
}
