package sqlinline

const QEnsureSchema = `--sql 3f1f4ab0-6f0a-4f6e-9a3c-2b8f0d1c5e77
create table if not exists tokens (
  id         uuid primary key,
  token_key  text not null unique,
  quota      int  not null check (quota >= 0),
  created_at timestamptz not null default now()
);
create table if not exists images (
  id         uuid primary key,
  token_id   uuid not null references tokens(id),
  url        text not null,
  prompt     text not null,
  created_at timestamptz not null default now()
);
create index if not exists images_token_created_idx on images (token_id, created_at desc);
`

const QSelectTokenByKey = `--sql 9a6e2d14-80b7-4c51-b1de-6f3a9c0841d2
select id, token_key, quota, created_at
from tokens
where token_key = $1;
`

const QInsertToken = `--sql c47b80f9-12aa-44d3-8c6e-05e9b72d31af
insert into tokens (id, token_key, quota)
values (gen_random_uuid(), $1, $2)
returning id;
`

// QConsumeQuota decrements a token's quota and records the generated image
// in one statement. The update is conditional on quota > 0, so concurrent
// requests cannot drive the counter negative: the loser scans zero rows.
const QConsumeQuota = `--sql 7d2c1e58-4b9f-4a07-9361-8ce04f5ab6d3
with consumed as (
  update tokens
  set quota = quota - 1
  where token_key = $1 and quota > 0
  returning id, quota
),
recorded as (
  insert into images (id, token_id, url, prompt)
  select gen_random_uuid(), consumed.id, $2, $3
  from consumed
  returning id
)
select consumed.id, consumed.quota
from consumed;
`
