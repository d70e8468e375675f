// Package config loads ToneTint settings.
//
// Sources, lowest precedence first:
//
//  1. built-in defaults (Default)
//  2. variables from a .env file, which never override the real environment
//  3. HF_TOKEN, HUGGINGFACE_API_KEY and OPENAI_API_KEY
//  4. TONETINT_<SECTION>_<KEY>, e.g. TONETINT_RENDER_CHUNK_SIZE=12
//
// Command line flags are applied on top by the caller. The merged result is
// validated with struct tags.
package config
