package seed

// details maps seed post ids to their full bodies. Only these ids resolve
// to a readable article.
var details = map[string]string{
	"1": artOfCreativeWriting,
	"2": blogWritingTips,
}

const artOfCreativeWriting = `Finding your unique writing voice is perhaps the most important part of becoming a writer that stands out from the crowd. Your voice is your literary fingerprint: it's what makes your writing distinctively yours.

## What is a writing voice?

Your writing voice is the way your personality comes through in your writing. It includes your word choice, syntax, sentence structure, and the rhythm of your prose. It's how readers can identify your writing even without seeing your name.

## Why is finding your voice important?

In a world filled with content, having a distinctive voice helps you:

1. **Connect with readers on a deeper level**
2. **Stand out in a crowded marketplace**
3. **Build a loyal readership that recognizes your work**
4. **Express yourself more authentically**

## How to develop your unique voice

### Read widely and deeply

The more you read, the more you'll understand different writing styles and be able to identify what resonates with you. Don't just stick to one genre, explore widely.

### Write regularly

Like any skill, writing improves with practice. The more you write, the more natural your voice will become. Don't worry about perfection in early drafts; focus on getting your thoughts on the page.

### Experiment with different styles

Try writing in different tones, perspectives, and formats. You might discover aspects of writing that feel more natural to you than others.

### Be authentic

The most compelling voices in writing are those that feel genuine. Don't try to sound like someone else or use vocabulary that feels unnatural to you.

### Embrace your quirks

Those little writing habits that make you different? They're not flaws, they're features of your unique voice. Embrace them.

## Final thoughts

Finding your voice isn't something that happens overnight. It's a process of continuous exploration and refinement. Be patient with yourself, and remember that your voice will evolve as you grow as a writer and as a person.

The most important thing is to keep writing, keep reading, and stay true to yourself. Your unique voice is waiting to be discovered, and the world needs to hear what only you can say.`

const blogWritingTips = `Blogging has become one of the most effective ways to share information, build authority, and connect with an audience. Whether you're blogging for business or pleasure, these ten tips will help you create content that engages readers and achieves your goals.

## 1. Know Your Audience

The foundation of successful blog writing is understanding who you're writing for. Research your target audience's interests, pain points, and preferences to create content that resonates with them.

## 2. Craft Compelling Headlines

Your headline is the first thing readers see, and it determines whether they'll click through to read more. Spend time creating headlines that are clear, specific, and intriguing.

## 3. Structure for Readability

Online readers tend to scan content rather than read word for word. Use short paragraphs, subheadings, bullet points, and numbered lists to make your content easy to digest.

## 4. Start Strong

The opening paragraph of your blog post should hook readers and give them a reason to continue. Present a problem, share an interesting fact, or ask a thought-provoking question.

## 5. Provide Actionable Value

Readers are looking for solutions and insights. Make sure your blog posts provide practical, useful information that readers can apply to their own lives or work.

## 6. Include Visual Elements

Break up text with relevant images, infographics, videos, or charts. Visual elements make your content more engaging and help illustrate complex concepts.

## 7. Write in a Conversational Tone

Blog writing is typically more casual than other forms of writing. Use a conversational tone, address readers directly, and let your personality shine through.

## 8. Edit Ruthlessly

Good writing is rewriting. After drafting your post, go back and cut unnecessary words, fix errors, and refine your ideas. Consider reading your post aloud to catch awkward phrasing.

## 9. Optimize for SEO

Help readers find your content by incorporating relevant keywords naturally throughout your post. Pay special attention to your title, headings, meta description, and first paragraph.

## 10. End with a Call to Action

What do you want readers to do after reading your post? Whether it's leaving a comment, sharing on social media, subscribing to your newsletter, or trying your product, end with a clear call to action.

By implementing these tips consistently, you'll create blog content that not only attracts readers but keeps them coming back for more. Remember that blogging is a skill that improves with practice, so don't be discouraged if your first few posts don't meet your expectations. Keep writing, keep learning, and keep refining your approach.`
