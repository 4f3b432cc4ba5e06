package payload

import "github.com/airesearchhub/site/content"

type PostResponse struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
	ReadingTime string   `json:"reading_time"`
}

type PostDetailResponse struct {
	PostResponse
	Content string `json:"content"`
	HTML    string `json:"html"`
}

func GetPostResponse(post content.Post) PostResponse {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	return PostResponse{
		Slug:        post.Slug,
		Title:       post.Title,
		Description: post.Description,
		Date:        post.Date,
		Tags:        tags,
		ReadingTime: post.ReadingTime,
	}
}

func GetPostsResponse(posts []content.Post) []PostResponse {
	data := make([]PostResponse, 0, len(posts))

	for _, post := range posts {
		data = append(data, GetPostResponse(post))
	}

	return data
}

func GetPostDetailResponse(post content.Post, html string) PostDetailResponse {
	return PostDetailResponse{
		PostResponse: GetPostResponse(post),
		Content:      post.Content,
		HTML:         html,
	}
}
