package sqlinline

const QSelectTokenImages = `--sql e8b51c03-97d4-4e2f-a6b8-1f40d2c7539e
select id, token_id, url, prompt, created_at
from images
where token_id = $1
order by created_at desc;
`
