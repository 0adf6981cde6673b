package handler

import "github.com/reusedev/imagen-studio/internal/modules/studio"

var imageStudio *studio.Studio

func Init(s *studio.Studio) {
	imageStudio = s
}
