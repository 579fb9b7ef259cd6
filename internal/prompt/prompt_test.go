package prompt_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"game-generator-api/internal/prompt"
)

var _ = Describe("BuildGamePrompt", func() {
	It("embeds the complexity on the five point scale", func() {
		Expect(prompt.BuildGamePrompt("змейка", 3)).To(ContainSubstring("Уровень сложности: 3/5"))
	})

	It("embeds the user's description", func() {
		Expect(prompt.BuildGamePrompt("a maze game", 2)).To(ContainSubstring("Описание игры: a maze game"))
	})

	It("passes out-of-range complexity through", func() {
		Expect(prompt.BuildGamePrompt("pong", 9)).To(ContainSubstring("9/5"))
	})

	It("asks for bare HTML", func() {
		Expect(prompt.BuildGamePrompt("pong", 2)).To(HaveSuffix("без объяснений и markdown разметки."))
	})

	It("does not interpret format verbs in the user prompt", func() {
		Expect(prompt.BuildGamePrompt("100%d fun", 2)).To(ContainSubstring("100%d fun"))
	})
})

var _ = Describe("StripCodeFences", func() {
	DescribeTable("cleaning model output",
		func(input, expected string) {
			Expect(prompt.StripCodeFences(input)).To(Equal(expected))
		},
		Entry("html fence without whitespace", "```html<div>x</div>```", "<div>x</div>"),
		Entry("html fence with newlines", "```html\n<!DOCTYPE html>\n<html></html>\n```\n", "<!DOCTYPE html>\n<html></html>"),
		Entry("bare fence", "```\n<canvas></canvas>\n```", "<canvas></canvas>"),
		Entry("no fence", "  <p>hi</p>  ", "<p>hi</p>"),
		Entry("fence in the middle", "<p>a</p>```<p>b</p>", "<p>a</p><p>b</p>"),
		Entry("empty", "", ""),
	)

	It("leaves other language tags behind the bare fence", func() {
		Expect(prompt.StripCodeFences("```javascript\nlet a = 1\n```")).To(Equal("javascript\nlet a = 1"))
	})
})
