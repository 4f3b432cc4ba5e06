package payload

import "github.com/airesearchhub/site/content"

type TagResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func GetTagsResponse(tags []content.TagCount) []TagResponse {
	data := make([]TagResponse, 0, len(tags))

	for _, tag := range tags {
		data = append(data, TagResponse{
			Name:  tag.Name,
			Count: tag.Count,
		})
	}

	return data
}
