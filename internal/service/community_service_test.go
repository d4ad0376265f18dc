package service

import (
	"strings"
	"testing"

	"github.com/courselens/courselens-backend/internal/model"
)

func TestLinkifyPostRendersContentAndReplies(t *testing.T) {
	post := &model.Post{
		ClassName: "CS 173",
		Title:     "Study group for CS 173",
		Content:   "Covering CS 173 and MATH 213 material.",
		Replies: []model.Reply{
			{Content: "Bring your PHYS 211 notes too."},
		},
	}

	linkifyPost(post)

	if !strings.Contains(post.Content, `<a href="/class?subject=CS&number=173&term=latest">CS 173</a>`) {
		t.Errorf("content = %q", post.Content)
	}
	if !strings.Contains(post.Content, `<a href="/class?subject=MATH&number=213&term=latest">MATH 213</a>`) {
		t.Errorf("content = %q", post.Content)
	}
	if !strings.Contains(post.Replies[0].Content, `<a href="/class?subject=PHYS&number=211&term=latest">PHYS 211</a>`) {
		t.Errorf("reply = %q", post.Replies[0].Content)
	}
	if post.Title != "Study group for CS 173" {
		t.Errorf("title must stay plain, got %q", post.Title)
	}
}

func TestLinkifyPostNil(t *testing.T) {
	linkifyPost(nil) // must not panic
}

func TestLinkifyPostsPlainText(t *testing.T) {
	posts := []model.Post{{Content: "no class mentions here"}}
	linkifyPosts(posts)
	if posts[0].Content != "no class mentions here" {
		t.Errorf("content = %q", posts[0].Content)
	}
}
