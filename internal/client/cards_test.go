package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folio-labs/portfolio/internal/models"
)

func TestTechnologySummary(t *testing.T) {
	assert.Equal(t, "Unity · C# · FMOD", TechnologySummary([]string{"Unity", "C#", "FMOD"}))
	assert.Equal(t, "Unity · C# · Blender +1", TechnologySummary([]string{"Unity", "C#", "Blender", "Photoshop"}))
	assert.Equal(t, "", TechnologySummary(nil))
}

func TestRenderCard(t *testing.T) {
	out := RenderCard(models.Project{
		Title:        "Epic Adventure Quest",
		Description:  "Open world",
		Technologies: []string{"Unity", "C#", "Blender", "Photoshop"},
		ImageURL:     "https://img.example/a.png",
		VideoURL:     "https://vid.example/a.mp4",
		GithubURL:    "https://github.com",
		Featured:     true,
	})

	assert.Contains(t, out, "Epic Adventure Quest")
	assert.Contains(t, out, "Featured")
	assert.Contains(t, out, "+1")
	assert.Contains(t, out, "Video: https://vid.example/a.mp4")
	assert.NotContains(t, out, "Image:")
	assert.Contains(t, out, "Code: https://github.com")
	assert.NotContains(t, out, "Live:")
}

func TestRenderCardWithoutExtras(t *testing.T) {
	out := RenderCard(models.Project{Title: "Mobile Racing Game", Description: "Fast"})
	assert.NotContains(t, out, "Featured")
	assert.NotContains(t, out, "Video:")
	assert.NotContains(t, out, "Image:")
}

func TestRenderProjectsEmpty(t *testing.T) {
	assert.Contains(t, RenderProjects(nil), EmptyMessage)
}

func TestRenderContactStatus(t *testing.T) {
	assert.Empty(t, RenderContactStatus(StatusIdle))
	assert.Contains(t, RenderContactStatus(StatusSuccess), "Message sent successfully!")
	assert.Contains(t, RenderContactStatus(StatusError), "Failed to send message")
}
