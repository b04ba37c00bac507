package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with lectern",
		Content: topicQuickstart,
	},
	{
		Name:    "layout",
		Title:   "Course Layout",
		Summary: "Directory anatomy of a lectern course",
		Content: topicLayout,
	},
	{
		Name:    "frontmatter",
		Title:   "Slides Frontmatter",
		Summary: "The slides.md format and recognized keys",
		Content: topicFrontmatter,
	},
	{
		Name:    "settings",
		Title:   "Settings Reference",
		Summary: ".lectern.yaml fields and defaults",
		Content: topicSettings,
	},
	{
		Name:    "pipeline",
		Title:   "Build Pipeline",
		Summary: "What 'lectern build' does and how failures are classified",
		Content: topicPipeline,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a course:

    mkdir my-course && cd my-course
    lectern init my-course

   This creates course.config.json, the file every other command uses
   to recognize the course root.

2. Scaffold a lecture from a free-text title:

    lectern new "Introduction to Go"

   The directory name is derived from the title (introduction-to-go).
   Cyrillic titles are transliterated; anything else unsafe becomes
   a hyphen.

3. Present it live (starts the toolchain dev server):

    lectern dev introduction-to-go

4. Build the whole course into a deployable site:

    lectern build

   Output lands in <course-name>/, one subdirectory per lecture, plus
   a generated index.html linking them all.

CLI Commands
------------

  lectern init <name>        Create a course root in the current directory
  lectern new <title>        Scaffold a lecture from a title
  lectern build [lecture]    Build one lecture, or every lecture
  lectern dev <lecture>      Run the dev server in the foreground
  lectern list               Show lectures and their build state
  lectern remove <lecture>   Delete a lecture (prompts unless --yes)
  lectern index              Regenerate the course index page
  lectern doctor             Check the environment and course health
  lectern docs [topic]       Show documentation

Every command except 'init' and 'docs' finds the course root by walking
up from the working directory looking for course.config.json.
`

const topicLayout = `Course Layout
=============

A course is a directory recognized by its course.config.json:

  my-course/
    course.config.json       {"course_name": "my-course"}
    .lectern.yaml            optional settings (see 'lectern docs settings')
    .lectern/
      logs/                  one log file per build run
      index.html             optional custom index template
    introduction-to-go/      one directory per lecture
      slides.md              the deck source (frontmatter + slides)
      package.json           toolchain dependencies and scripts
      node_modules/          installed dependencies
      dist/                  the toolchain's build output
    my-course/               the aggregated site, named after the course
      index.html             generated lecture listing
      slides.json            {"slides": [{"name", "title"}, ...]}
      introduction-to-go/    copied build artifacts

Lecture discovery skips dotted directories, node_modules, and the
aggregated output directory; everything else containing a slides.md
counts as a lecture.

The aggregated directory is fully derived: it is safe to delete and
rebuild with 'lectern build' at any time. slides.json is the one file
inside it that lectern maintains incrementally (lecture creation,
title changes, removal).

Custom index template
---------------------

Put an index.html containing the line

  <!-- LECTURES -->

into .lectern/ and the generated lecture list replaces the marker
instead of using the built-in page.
`

const topicFrontmatter = `Slides Frontmatter
==================

slides.md starts with a YAML block fenced by --- lines:

  ---
  theme: default
  title: "Introduction to Go"
  ---

  # Introduction to Go

  First slide content.

  ---

  Second slide.

The title key is the one lectern reads: after every successful build,
the recorded title in slides.json is reconciled against it, so renaming
a deck is just editing the frontmatter and rebuilding.

Recognized keys
---------------

  title        string   Display title (required for title sync)
  theme        string   Toolchain theme name
  layout       string   Layout of the first slide
  background   string   Background image URL
  info         string   Deck description shown by the toolchain

Only the first --- block is frontmatter. The --- separators between
slides further down are deck content and left untouched.

A missing or unterminated frontmatter block does not fail the build;
lectern just skips the title sync for that lecture and says so in the
build log.
`

const topicSettings = `Settings Reference
==================

Optional .lectern.yaml at the course root:

  package-manager: npm     # or pnpm
  build-timeout: 5         # minutes per toolchain command, 0 = no limit
  dev-port: 0              # fixed port for 'lectern dev', 0 = toolchain default
  open: true               # pass --open to the dev server

All fields are optional; an absent file means the defaults above.

  package-manager   Which binary runs install/build/dev. npm inserts
                    the '--' separator before script arguments, pnpm
                    passes them directly.
  build-timeout     Applied to 'install' and 'run build' invocations.
                    A build that exceeds it is killed (the whole
                    process group) and reported as a timeout.
  dev-port          Passed as --port to the dev server when non-zero.
  open              Whether the dev server opens a browser tab.

Validation is strict: an unknown package manager, a negative timeout,
or an out-of-range port fails every command with a settings error
rather than being silently ignored.
`

const topicPipeline = `Build Pipeline
==============

'lectern build <lecture>' runs these steps in order:

  1. Verify the lecture directory and its slides.md exist.
  2. Install dependencies ('npm install') if node_modules is absent.
  3. Build with the public base path ('npm run build -- --base
     /<course>/<lecture>/') so assets resolve when the course is
     served as one site.
  4. Replace <course>/<lecture>/ in the aggregated output with the
     fresh dist/ contents. A build that produced no dist/ is a
     warning, not a failure.
  5. Sync the frontmatter title into slides.json.
  6. Regenerate the course index.html.

Steps 5 and 6 never fail a build that already produced output; their
problems are logged and skipped.

'lectern build' without an argument runs the same pipeline for every
lecture, keeps going past individual failures, and exits nonzero if
any lecture failed, naming the failures in the summary.

Toolchain commands run with these variables set, for use in
package.json scripts:

  LECTERN_COURSE      The course name.
  LECTERN_LECTURE     The lecture being built.
  LECTERN_ROOT        The course root directory.

Failure kinds
-------------

  lecture-not-found   No such directory, or no slides.md in it.
  npm-not-found       The package manager binary is missing (ENOENT,
                      'command not found').
  timeout             The command exceeded build-timeout.
  build-failed        Everything else; the message carries the tail
                      of the toolchain's stderr.

Every run writes a full log to .lectern/logs/<lecture>-<run>.log; the
console shows the same lines plus the streamed toolchain output.
`
