// Package editor is the terminal input surface. It walks the form sections
// with survey prompts and applies every answer through a form.Controller, so
// subscribed previews follow each edit.
package editor
